// Package save implements the driver-owned battery-RAM persistence
// policy: snapshot a cartridge's external RAM, compress it, and write
// it beside the ROM file; decompress it back on load. The core itself
// never touches disk.
package save

import (
	"fmt"
	"os"

	"github.com/google/brotli/go/cbrotli"

	"github.com/wrenfield/dmgcore/internal/cartridge"
)

// Write compresses cart's battery RAM and writes it to path. A no-op
// when the cartridge carries no RAM.
func Write(path string, cart cartridge.Cartridge) error {
	ram := cart.RAM()
	if ram == nil {
		return nil
	}

	compressed, err := cbrotli.Encode(ram, cbrotli.WriterOptions{Quality: 9})
	if err != nil {
		return fmt.Errorf("save: compress: %w", err)
	}

	if err := os.WriteFile(path, compressed, 0o644); err != nil {
		return fmt.Errorf("save: write %s: %w", path, err)
	}
	return nil
}

// Load decompresses the RAM snapshot at path and restores it into cart.
// Returns nil if path does not exist (a ROM's first run has no save).
func Load(path string, cart cartridge.Cartridge) error {
	compressed, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("save: read %s: %w", path, err)
	}

	data, err := cbrotli.Decode(compressed)
	if err != nil {
		return fmt.Errorf("save: decompress %s: %w", path, err)
	}

	cart.LoadRAM(data)
	return nil
}
