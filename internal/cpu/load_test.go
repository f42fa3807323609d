package cpu

import "testing"

func TestLoadRegisterToRegister(t *testing.T) {
	c, _ := loadProgram(0x41) // LD B, C
	c.C = 0x7A
	c.Step()

	if c.B != 0x7A {
		t.Errorf("B = %#02x, want 0x7A", c.B)
	}
}

func TestLoadMemoryToRegister(t *testing.T) {
	c, b := loadProgram(0x46) // LD B, (HL)
	c.HL.SetUint16(0xC010)
	b.mem[0xC010] = 0x99
	c.Step()

	if c.B != 0x99 {
		t.Errorf("B = %#02x, want 0x99", c.B)
	}
}

func TestLoadRegisterToMemory(t *testing.T) {
	c, b := loadProgram(0x70) // LD (HL), B
	c.HL.SetUint16(0xC020)
	c.B = 0x55
	c.Step()

	if b.mem[0xC020] != 0x55 {
		t.Errorf("(HL) = %#02x, want 0x55", b.mem[0xC020])
	}
}

func TestLoadHLIncrementsPostAccess(t *testing.T) {
	c, b := loadProgram(0x22) // LD (HL+), A
	c.HL.SetUint16(0xC030)
	c.A = 0x01
	c.Step()

	if b.mem[0xC030] != 0x01 {
		t.Errorf("(0xC030) = %#02x, want 0x01", b.mem[0xC030])
	}
	if c.HL.Uint16() != 0xC031 {
		t.Errorf("HL = %#04x, want 0xC031", c.HL.Uint16())
	}
}

func TestLDHWritesHighPage(t *testing.T) {
	c, b := loadProgram(0xE0, 0x50) // LDH (0xFF50), A
	c.A = 0x01
	c.Step()

	if b.mem[0xFF50] != 0x01 {
		t.Errorf("(0xFF50) = %#02x, want 0x01", b.mem[0xFF50])
	}
}
