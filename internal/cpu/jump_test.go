package cpu

import (
	"testing"

	"github.com/wrenfield/dmgcore/internal/interrupts"
)

func TestJumpRelativeTaken(t *testing.T) {
	c, _ := loadProgram(0x18, 0x05) // JR +5
	cycles := c.Step()

	if c.PC != 0x0107 {
		t.Errorf("PC = %#04x, want 0x0107", c.PC)
	}
	if cycles != 3 {
		t.Errorf("cycles = %d, want 3", cycles)
	}
}

func TestJumpRelativeNotTaken(t *testing.T) {
	c, _ := loadProgram(0x20, 0x05) // JR NZ, +5
	c.setFlag(FlagZero)
	cycles := c.Step()

	if c.PC != 0x0102 {
		t.Errorf("PC = %#04x, want 0x0102 (fall through)", c.PC)
	}
	if cycles != 2 {
		t.Errorf("cycles = %d, want 2", cycles)
	}
}

func TestCallAndReturnRoundTrip(t *testing.T) {
	c, b := loadProgram(0xCD, 0x00, 0x02) // CALL 0x0200
	b.mem[0x0200] = 0xC9                  // RET
	c.SP = 0xFFFE

	c.Step() // CALL
	if c.PC != 0x0200 {
		t.Errorf("PC = %#04x after CALL, want 0x0200", c.PC)
	}

	c.Step() // RET
	if c.PC != 0x0103 {
		t.Errorf("PC = %#04x after RET, want 0x0103", c.PC)
	}
	if c.SP != 0xFFFE {
		t.Errorf("SP = %#04x after CALL/RET, want 0xFFFE", c.SP)
	}
}

func TestRETIDelaysIMEByOneInstruction(t *testing.T) {
	c, b := loadProgram(0xD9, 0x00) // RETI; NOP
	b.mem[0x0200] = 0x00
	c.SP = 0xFFFE
	c.push16(0x0200)

	c.interrupts.Enable = 0x01
	c.interrupts.Request(interrupts.VBlankFlag)

	c.Step() // RETI: PC -> 0x0200, IME scheduled but not yet enabled
	if c.ime != ImeEnablePending {
		t.Errorf("ime = %v immediately after RETI, want ImeEnablePending", c.ime)
	}
	if c.PC != 0x0200 {
		t.Errorf("PC = %#04x after RETI, want 0x0200", c.PC)
	}

	c.Step() // the instruction following RETI must still run, undispatched
	if c.PC != 0x0201 {
		t.Errorf("PC = %#04x, want 0x0201 (NOP ran instead of dispatching)", c.PC)
	}
	if c.ime != ImeEnabled {
		t.Errorf("ime = %v after the following instruction, want ImeEnabled", c.ime)
	}

	c.Step() // only now may the pending interrupt dispatch
	if c.PC != 0x0040 {
		t.Errorf("PC = %#04x, want 0x0040 (interrupt dispatched)", c.PC)
	}
}

func TestRSTPushesReturnAddress(t *testing.T) {
	c, b := loadProgram(0xDF) // RST 18H
	c.SP = 0xFFFE
	c.Step()

	if c.PC != 0x0018 {
		t.Errorf("PC = %#04x, want 0x0018", c.PC)
	}
	low := b.mem[c.SP]
	high := b.mem[c.SP+1]
	if uint16(high)<<8|uint16(low) != 0x0101 {
		t.Errorf("stacked return = %#04x, want 0x0101", uint16(high)<<8|uint16(low))
	}
}
