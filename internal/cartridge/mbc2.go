package cartridge

// mbc2 has no external RAM cartridge window at all; instead it carries its
// own 512x4-bit RAM built into the MBC, addressed by the same 0xA000-
// 0xBFFF window but only ever returning the low nibble of each byte (the
// upper nibble reads back as 1s). The ROM-bank register is a single 4-bit
// latch, written through the low ROM window whenever bit 8 of the address
// is set (bit 8 doubles as "this write selects ROM bank, not RAM enable").
type mbc2 struct {
	rom []byte
	ram [512]byte

	ramEnable bool
	romBank   uint8 // 4 bits

	romBanks int
	header   Header
}

func newMBC2(rom []byte, header Header) *mbc2 {
	banks := len(rom) / 0x4000
	if banks == 0 {
		banks = 1
	}
	return &mbc2{rom: rom, romBank: 1, romBanks: banks, header: header}
}

func (m *mbc2) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return m.rom[address]
	case address < 0x8000:
		bank := int(m.romBank) % m.romBanks
		return m.rom[bank*0x4000+int(address-0x4000)]
	case address >= 0xA000 && address < 0xC000:
		if !m.ramEnable {
			return 0xFF
		}
		return m.ram[address&0x1FF] | 0xF0
	default:
		return 0xFF
	}
}

func (m *mbc2) Write(address uint16, value uint8) {
	switch {
	case address < 0x4000:
		// bit 8 of the address distinguishes a RAM-enable write (bit
		// clear) from a ROM-bank-select write (bit set).
		if address&0x0100 == 0 {
			m.ramEnable = value&0x0F == 0x0A
		} else {
			m.romBank = value & 0x0F
			if m.romBank == 0 {
				m.romBank = 1
			}
		}
	case address >= 0xA000 && address < 0xC000:
		if m.ramEnable {
			m.ram[address&0x1FF] = value & 0x0F
		}
	}
}

func (m *mbc2) RAM() []byte {
	return m.ram[:]
}

func (m *mbc2) LoadRAM(data []byte) { copy(m.ram[:], data) }
func (m *mbc2) Header() Header      { return m.header }
