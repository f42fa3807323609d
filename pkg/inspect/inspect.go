// Package inspect is a debug introspection server: it streams a running
// machine's register file and cycle counter to any connected websocket
// client, for tooling that wants to watch the core run without
// embedding a full display.
package inspect

import (
	"encoding/binary"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/wrenfield/dmgcore/internal/gameboy"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Snapshot is the wire format sent after every N steps: the eight
// architectural registers, SP, PC and the monotonic cycle counter.
type Snapshot struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
	TotalCycles            uint64
}

func snapshotOf(gb *gameboy.GameBoy) Snapshot {
	c := gb.CPU
	return Snapshot{
		A: c.A, F: c.F, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		SP: c.SP, PC: c.PC, TotalCycles: c.TotalCycles(),
	}
}

func (s Snapshot) marshal() []byte {
	buf := make([]byte, 21)
	buf[0], buf[1], buf[2], buf[3] = s.A, s.F, s.B, s.C
	buf[4], buf[5], buf[6], buf[7] = s.D, s.E, s.H, s.L
	binary.LittleEndian.PutUint16(buf[8:10], s.SP)
	binary.LittleEndian.PutUint16(buf[10:12], s.PC)
	binary.LittleEndian.PutUint64(buf[13:21], s.TotalCycles)
	return buf
}

// Server streams Snapshots to every connected client whenever Tick is
// called, at whatever cadence the driver's step loop chooses.
type Server struct {
	gb *gameboy.GameBoy

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// New returns a Server watching gb. Register its Handler on an
// http.ServeMux to expose it.
func New(gb *gameboy.GameBoy) *Server {
	return &Server{gb: gb, clients: make(map[*websocket.Conn]bool)}
}

// Handler upgrades incoming requests to websocket connections and adds
// them to the broadcast set.
func (s *Server) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Tick broadcasts the current snapshot to every connected client. The
// driver calls this every N steps of gb.Step.
func (s *Server) Tick() {
	msg := snapshotOf(s.gb).marshal()

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}
