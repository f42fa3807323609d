package cpu

// instruction pairs an opcode's mnemonic (useful for tracing/debugging)
// with the closure that executes it.
type instruction struct {
	name string
	fn   func(*CPU)
}

var instructionSet [256]instruction
var instructionSetCB [256]instruction

// DefineInstruction registers fn as the handler for opcode in the main
// table. Called from each family's init() so that every opcode's
// registration sits next to the family it belongs to.
func DefineInstruction(opcode uint8, name string, fn func(*CPU)) {
	instructionSet[opcode] = instruction{name: name, fn: fn}
}

// DefineInstructionCB registers fn as the handler for opcode in the
// CB-prefixed table.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU)) {
	instructionSetCB[opcode] = instruction{name: name, fn: fn}
}

// undefinedOpcodes are the eleven byte values the LR35902 never assigned
// a meaning to; decoding one is a fatal condition.
var undefinedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) {})

	DefineInstruction(0x10, "STOP", func(c *CPU) {
		c.readOperand() // the second STOP byte, conventionally 0x00
		c.stopped = true
		c.halted = true
	})

	DefineInstruction(0x27, "DAA", func(c *CPU) {
		adjust := uint8(0)
		carry := c.isFlagSet(FlagCarry)

		if c.isFlagSet(FlagHalfCarry) || (!c.isFlagSet(FlagSubtract) && c.A&0xF > 0x9) {
			adjust |= 0x06
		}
		if c.isFlagSet(FlagCarry) || (!c.isFlagSet(FlagSubtract) && c.A > 0x99) {
			adjust |= 0x60
			carry = true
		}

		if c.isFlagSet(FlagSubtract) {
			c.A -= adjust
		} else {
			c.A += adjust
		}

		c.shouldZeroFlag(c.A)
		c.clearFlag(FlagHalfCarry)
		if carry {
			c.setFlag(FlagCarry)
		} else {
			c.clearFlag(FlagCarry)
		}
	})

	DefineInstruction(0x2F, "CPL", func(c *CPU) {
		c.A = ^c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})

	DefineInstruction(0x37, "SCF", func(c *CPU) {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})

	DefineInstruction(0x3F, "CCF", func(c *CPU) {
		if c.isFlagSet(FlagCarry) {
			c.clearFlag(FlagCarry)
		} else {
			c.setFlag(FlagCarry)
		}
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})

	DefineInstruction(0x76, "HALT", func(c *CPU) {
		c.halted = true
	})

	DefineInstruction(0xF3, "DI", func(c *CPU) {
		c.ime = ImeDisablePending
	})

	DefineInstruction(0xFB, "EI", func(c *CPU) {
		c.ime = ImeEnablePending
	})

	for _, opcode := range undefinedOpcodes {
		op := opcode
		DefineInstruction(op, "undefined", func(c *CPU) {
			panic(&UnimplementedOpcodeError{Opcode: op, PC: c.PC - 1})
		})
	}
}
