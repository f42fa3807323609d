package cpu

import "testing"

func TestAndSetsHalfCarry(t *testing.T) {
	c, _ := loadProgram(0xA1) // AND C
	c.A = 0xF0
	c.C = 0x3F
	c.Step()

	if c.A != 0x30 {
		t.Errorf("A = %#02x, want 0x30", c.A)
	}
	if !c.isFlagSet(FlagHalfCarry) {
		t.Errorf("AND must always set half-carry")
	}
	if c.isFlagSet(FlagCarry) {
		t.Errorf("AND must clear carry")
	}
}

func TestOrClearsHalfCarryAndCarry(t *testing.T) {
	c, _ := loadProgram(0xB1) // OR C
	c.A = 0x0F
	c.C = 0xF0
	c.setFlag(FlagCarry)
	c.Step()

	if c.A != 0xFF {
		t.Errorf("A = %#02x, want 0xFF", c.A)
	}
	if c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagCarry) {
		t.Errorf("OR must clear H and C, got F=%#02x", c.F)
	}
}

func TestXorImmediate(t *testing.T) {
	c, _ := loadProgram(0xEE, 0xFF) // XOR 0xFF
	c.A = 0x0F
	c.Step()

	if c.A != 0xF0 {
		t.Errorf("A = %#02x, want 0xF0", c.A)
	}
}
