// Package cartridge implements the Game Boy cartridge: a ROM image, its
// optional external RAM, and the bank-switching logic ("MBC") that maps
// both into the CPU's 16-bit address space. See mbc1.go for the reference
// MBC1 mapping rules; mbc2.go, mbc3.go and mbc5.go are the other supported
// variants, all satisfying the same Cartridge capability below.
package cartridge

import "fmt"

// Cartridge is the capability every MBC variant provides. The Bus never
// needs to know which variant it is talking to.
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)

	// RAM returns the cartridge's battery-backed external RAM, for the
	// driver to persist across power cycles (see pkg/save). Returns nil
	// if the cartridge has no RAM.
	RAM() []byte
	// LoadRAM restores previously-persisted RAM contents.
	LoadRAM(data []byte)

	Header() Header
}

// UnsupportedMBCError is returned when the cartridge-type byte does not
// match a supported MBC variant; the loader refuses to construct the
// cartridge.
type UnsupportedMBCError struct {
	Type Type
}

func (e *UnsupportedMBCError) Error() string {
	return fmt.Sprintf("cartridge: unsupported cartridge type %#02x", uint8(e.Type))
}

// Load parses rom's header and constructs the appropriate MBC variant.
func Load(rom []byte) (Cartridge, error) {
	header, err := ParseHeader(rom)
	if err != nil {
		return nil, err
	}

	switch header.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
		return newNoMBC(rom, header), nil
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return newMBC1(rom, header), nil
	case MBC2, MBC2BATT:
		return newMBC2(rom, header), nil
	case MBC3, MBC3RAM, MBC3RAMBATT, MBC3TIMERBATT, MBC3TIMERRAMBATT:
		return newMBC3(rom, header), nil
	case MBC5, MBC5RAM, MBC5RAMBATT, MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		return newMBC5(rom, header), nil
	default:
		return nil, &UnsupportedMBCError{Type: header.CartridgeType}
	}
}

// noMBC is a flat, unbanked cartridge: a ROM of at most 32 KiB and, on
// some titles, a single fixed RAM bank with no enable gate.
type noMBC struct {
	rom, ram []byte
	header   Header
}

func newNoMBC(rom []byte, header Header) *noMBC {
	return &noMBC{rom: rom, ram: make([]byte, header.RAMSize), header: header}
}

func (c *noMBC) Read(address uint16) uint8 {
	switch {
	case address < 0x8000:
		return c.rom[address]
	case address >= 0xA000 && address < 0xC000:
		if len(c.ram) == 0 {
			return 0xFF
		}
		return c.ram[(address-0xA000)%uint16(len(c.ram))]
	default:
		return 0xFF
	}
}

func (c *noMBC) Write(address uint16, value uint8) {
	if address >= 0xA000 && address < 0xC000 && len(c.ram) > 0 {
		c.ram[(address-0xA000)%uint16(len(c.ram))] = value
	}
}

func (c *noMBC) RAM() []byte {
	if len(c.ram) == 0 {
		return nil
	}
	return c.ram
}

func (c *noMBC) LoadRAM(data []byte) { copy(c.ram, data) }
func (c *noMBC) Header() Header      { return c.header }
