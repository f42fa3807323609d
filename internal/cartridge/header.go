package cartridge

import "fmt"

// Type is the cartridge-type byte at 0x0147, which selects the MBC
// variant the loader constructs.
type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
)

// romBanks maps the ROM-size code at 0x0148 to the number of 16 KiB banks
// the image is partitioned into.
var romBanks = map[uint8]int{
	0x00: 2,
	0x01: 4,
	0x02: 8,
	0x03: 16,
	0x04: 32,
	0x05: 64,
	0x06: 128,
}

// ramSize maps the RAM-size code at 0x0149 to the total external RAM size
// in bytes.
var ramSize = map[uint8]int{
	0x00: 0,
	0x01: 2 * 1024,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
}

// Header is the parsed cartridge header, 0x0100-0x014F.
type Header struct {
	Title         string
	CartridgeType Type
	ROMBanks      int
	RAMSize       int

	HeaderChecksum uint8
	GlobalChecksum uint16
}

// ParseHeader reads the header out of a full ROM image. It does not
// validate the header checksum or the cartridge type (Load reports an
// unknown type as *UnsupportedMBCError); it does return an error for an
// image shorter than the header or an unrecognised ROM-size code. An
// unrecognised RAM-size code yields a RAMSize of 0.
func ParseHeader(rom []byte) (Header, error) {
	if len(rom) < 0x150 {
		return Header{}, fmt.Errorf("cartridge: image too short to contain a header (%d bytes)", len(rom))
	}

	h := Header{
		Title:         string(rom[0x134:0x144]),
		CartridgeType: Type(rom[0x147]),
	}

	banks, ok := romBanks[rom[0x148]]
	if !ok {
		return Header{}, fmt.Errorf("cartridge: unrecognised ROM size code %#02x", rom[0x148])
	}
	h.ROMBanks = banks
	h.RAMSize = ramSize[rom[0x149]]
	h.HeaderChecksum = rom[0x14D]
	h.GlobalChecksum = uint16(rom[0x14E])<<8 | uint16(rom[0x14F])

	return h, nil
}

func (h Header) String() string {
	return fmt.Sprintf("%s (type %#02x, %d ROM bank(s), %d bytes RAM)", h.Title, h.CartridgeType, h.ROMBanks, h.RAMSize)
}
