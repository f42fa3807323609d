// Package gameboy wires the CPU, Bus, Cartridge, Interrupt Controller
// and Timer into the single owning aggregate a driver talks to: load a
// ROM, call Step in a loop, read RAM back out for persistence.
package gameboy

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wrenfield/dmgcore/internal/bus"
	"github.com/wrenfield/dmgcore/internal/cartridge"
	"github.com/wrenfield/dmgcore/internal/cpu"
)

// ClockSpeed is the DMG's crystal frequency in Hertz.
const ClockSpeed = 4194304

// CyclesPerFrame is the number of machine cycles in one frame, taking
// the frame rate as 60 Hz.
const CyclesPerFrame = ClockSpeed / 4 / 60

// GameBoy owns every CORE component and the glue between them. It is
// the thing a driver constructs once per loaded ROM.
type GameBoy struct {
	CPU  *cpu.CPU
	Bus  *bus.Bus
	Cart cartridge.Cartridge

	Log logrus.FieldLogger

	totalFrameCycles uint64
}

// Option configures a GameBoy at construction time.
type Option func(*GameBoy)

// WithLogger overrides the default logrus logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(gb *GameBoy) { gb.Log = log }
}

// New loads rom and returns a GameBoy ready to Step from the documented
// post-boot-ROM reset state.
func New(rom []byte, opts ...Option) (*GameBoy, error) {
	cart, err := cartridge.Load(rom)
	if err != nil {
		return nil, fmt.Errorf("gameboy: %w", err)
	}

	b := bus.New(cart)
	c := cpu.New(b, b.Interrupts, b.Timer)

	gb := &GameBoy{
		CPU:  c,
		Bus:  b,
		Cart: cart,
		Log:  b.Log,
	}
	for _, opt := range opts {
		opt(gb)
	}
	b.Log = gb.Log
	return gb, nil
}

// Step advances the machine by exactly one CPU instruction (or one HALT
// tick, or one interrupt dispatch) and returns the machine-cycle cost.
func (gb *GameBoy) Step() uint8 {
	return gb.CPU.Step()
}

// RunFrame steps the machine until at least one frame's worth of cycles
// has been consumed, for drivers pacing against real time.
func (gb *GameBoy) RunFrame() {
	var consumed uint64
	for consumed < CyclesPerFrame {
		consumed += uint64(gb.Step())
	}
	gb.totalFrameCycles += consumed
}

// FrameTime is the real-time duration of one frame, for drivers that
// pace RunFrame against a ticker.
const FrameTime = time.Second / 60
