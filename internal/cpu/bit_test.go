package cpu

import "testing"

func TestBitSetsZeroWhenClear(t *testing.T) {
	c, _ := loadProgram(0xCB, 0x40) // BIT 0, B
	c.B = 0xFE                      // bit 0 clear
	c.Step()

	if !c.isFlagSet(FlagZero) {
		t.Errorf("zero flag not set when tested bit is clear")
	}
	if !c.isFlagSet(FlagHalfCarry) {
		t.Errorf("half-carry must always be set by BIT")
	}
}

func TestBitClearsZeroWhenSet(t *testing.T) {
	c, _ := loadProgram(0xCB, 0x40) // BIT 0, B
	c.B = 0x01
	c.Step()

	if c.isFlagSet(FlagZero) {
		t.Errorf("zero flag set when tested bit is set")
	}
}

func TestResClearsBit(t *testing.T) {
	c, _ := loadProgram(0xCB, 0x87) // RES 0, A
	c.A = 0xFF
	c.Step()

	if c.A != 0xFE {
		t.Errorf("A = %#02x, want 0xFE", c.A)
	}
}

func TestSetSetsBit(t *testing.T) {
	c, _ := loadProgram(0xCB, 0xC7) // SET 0, A
	c.A = 0x00
	c.Step()

	if c.A != 0x01 {
		t.Errorf("A = %#02x, want 0x01", c.A)
	}
}

func TestBitHLDoesNotModifyMemory(t *testing.T) {
	c, b := loadProgram(0xCB, 0x46) // BIT 0, (HL)
	c.HL.SetUint16(0xC040)
	b.mem[0xC040] = 0x01
	c.Step()

	if b.mem[0xC040] != 0x01 {
		t.Errorf("(HL) modified by BIT: %#02x", b.mem[0xC040])
	}
	if c.isFlagSet(FlagZero) {
		t.Errorf("zero flag set when tested bit is set")
	}
}
