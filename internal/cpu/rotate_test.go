package cpu

import "testing"

func TestRLCASetsCarryFromBit7(t *testing.T) {
	c, _ := loadProgram(0x07) // RLCA
	c.A = 0x85
	c.Step()

	if c.A != 0x0B {
		t.Errorf("A = %#02x, want 0x0B", c.A)
	}
	if !c.isFlagSet(FlagCarry) {
		t.Errorf("carry not set from original bit 7")
	}
	if c.isFlagSet(FlagZero) {
		t.Errorf("accumulator rotate forms must always clear Z")
	}
}

func TestCBRLThroughCarry(t *testing.T) {
	c, _ := loadProgram(0xCB, 0x10) // RL B
	c.B = 0x80
	c.clearFlag(FlagCarry)
	c.Step()

	if c.B != 0x00 {
		t.Errorf("B = %#02x, want 0x00", c.B)
	}
	if !c.isFlagSet(FlagZero) {
		t.Errorf("zero flag not set")
	}
	if !c.isFlagSet(FlagCarry) {
		t.Errorf("carry not set from original bit 7")
	}
}

func TestCBRRCNotThroughCarry(t *testing.T) {
	c, _ := loadProgram(0xCB, 0x09) // RRC C
	c.C = 0x01
	c.Step()

	if c.C != 0x80 {
		t.Errorf("C = %#02x, want 0x80", c.C)
	}
	if !c.isFlagSet(FlagCarry) {
		t.Errorf("carry not set from original bit 0")
	}
}
