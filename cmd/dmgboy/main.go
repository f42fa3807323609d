package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/wrenfield/dmgcore/internal/cartridge"
	"github.com/wrenfield/dmgcore/internal/cpu"
	"github.com/wrenfield/dmgcore/internal/gameboy"
	"github.com/wrenfield/dmgcore/pkg/inspect"
	"github.com/wrenfield/dmgcore/pkg/loader"
	"github.com/wrenfield/dmgcore/pkg/save"
)

func main() {
	romFile := flag.String("rom", "", "the ROM file to load (.gb, .gbc or .7z archive)")
	saveDir := flag.String("save-dir", "", "directory to persist battery RAM in (defaults to the ROM's directory)")
	headless := flag.Bool("headless", false, "run without attaching a display or joypad")
	inspectAddr := flag.String("inspect", "", "address to serve the debug inspector on, e.g. :6060 (disabled if empty)")
	cycleBudget := flag.Uint64("cycles", 0, "stop after this many machine cycles (0 runs until the process is killed)")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})

	if *romFile == "" {
		log.Fatal("dmgboy: -rom is required")
	}

	rom, err := loader.Load(*romFile)
	if err != nil {
		log.WithError(err).Fatal("dmgboy: failed to load ROM")
	}

	gb, err := gameboy.New(rom.Data, gameboy.WithLogger(log))
	if err != nil {
		var unsupported *cartridge.UnsupportedMBCError
		var badOpcode *cpu.UnimplementedOpcodeError
		switch {
		case errors.As(err, &unsupported):
			log.WithError(err).Fatal("dmgboy: cartridge not supported")
		case errors.As(err, &badOpcode):
			log.WithError(err).Fatal("dmgboy: decoded an unimplemented opcode")
		default:
			log.WithError(err).Fatal("dmgboy: failed to start")
		}
	}

	dir := *saveDir
	if dir == "" {
		dir = filepath.Dir(*romFile)
	}
	savePath := loader.SaveFileName(dir, rom)
	if err := save.Load(savePath, gb.Cart); err != nil {
		log.WithError(err).Fatal("dmgboy: failed to load save data")
	}

	var srv *inspect.Server
	if *inspectAddr != "" {
		srv = inspect.New(gb)
		mux := http.NewServeMux()
		mux.HandleFunc("/", srv.Handler)
		go func() {
			if err := http.ListenAndServe(*inspectAddr, mux); err != nil {
				log.WithError(err).Error("dmgboy: inspector server exited")
			}
		}()
	}

	// -headless is accepted for compatibility with a future display
	// front end; this core-only repository has no display collaborator
	// to attach, so both modes run the same cycle-stepping loop.
	_ = *headless
	runHeadless(gb, *cycleBudget, srv)

	if err := save.Write(savePath, gb.Cart); err != nil {
		log.WithError(err).Fatal("dmgboy: failed to write save data")
	}
}

// inspectEvery is the number of steps between inspector snapshots.
const inspectEvery = 10000

func runHeadless(gb *gameboy.GameBoy, cycleBudget uint64, srv *inspect.Server) {
	var consumed, steps uint64
	for cycleBudget == 0 || consumed < cycleBudget {
		consumed += uint64(gb.Step())
		steps++
		if srv != nil && steps%inspectEvery == 0 {
			srv.Tick()
		}
	}
	fmt.Fprintf(os.Stderr, "dmgboy: ran %d machine cycles\n", consumed)
}
