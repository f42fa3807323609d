package cpu

import "testing"

func TestSLAClearsBit0(t *testing.T) {
	c, _ := loadProgram(0xCB, 0x27) // SLA A
	c.A = 0x81
	c.Step()

	if c.A != 0x02 {
		t.Errorf("A = %#02x, want 0x02", c.A)
	}
	if !c.isFlagSet(FlagCarry) {
		t.Errorf("carry not set from original bit 7")
	}
}

func TestSRAPreservesSignBit(t *testing.T) {
	c, _ := loadProgram(0xCB, 0x2F) // SRA A
	c.A = 0x81
	c.Step()

	if c.A != 0xC0 {
		t.Errorf("A = %#02x, want 0xC0", c.A)
	}
	if !c.isFlagSet(FlagCarry) {
		t.Errorf("carry not set from original bit 0")
	}
}

func TestSRLClearsBit7(t *testing.T) {
	c, _ := loadProgram(0xCB, 0x3F) // SRL A
	c.A = 0x81
	c.Step()

	if c.A != 0x40 {
		t.Errorf("A = %#02x, want 0x40", c.A)
	}
	if !c.isFlagSet(FlagCarry) {
		t.Errorf("carry not set from original bit 0")
	}
}
