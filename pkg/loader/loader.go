// Package loader reads a cartridge image from disk, transparently
// unwrapping 7z-archived ROM collections, and fingerprints the loaded
// image so save data can be keyed by ROM content rather than filename.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
	"github.com/cespare/xxhash"
)

// ROM is a loaded cartridge image plus the content hash used to key its
// save file.
type ROM struct {
	Data []byte
	Hash uint64
}

// Load reads filename and returns its bytes. Plain .gb/.gbc files are
// read as-is; .7z archives are opened and their first entry extracted,
// matching how SD-card ROM folders are usually distributed.
func Load(filename string) (*ROM, error) {
	data, err := loadBytes(filename)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	return &ROM{Data: data, Hash: xxhash.Sum64(data)}, nil
}

func loadBytes(filename string) ([]byte, error) {
	if filepath.Ext(filename) != ".7z" {
		return os.ReadFile(filename)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	r, err := sevenzip.NewReader(f, info.Size())
	if err != nil {
		return nil, err
	}
	if len(r.File) == 0 {
		return nil, fmt.Errorf("loader: archive %s is empty", filename)
	}

	entry, err := r.File[0].Open()
	if err != nil {
		return nil, err
	}
	defer entry.Close()

	return io.ReadAll(entry)
}

// SaveFileName returns the path the driver should persist rom's battery
// RAM under, keyed by content hash so renaming the ROM file doesn't
// orphan its save.
func SaveFileName(dir string, rom *ROM) string {
	return filepath.Join(dir, fmt.Sprintf("%016x.sav.br", rom.Hash))
}
