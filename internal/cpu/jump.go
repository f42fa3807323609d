package cpu

import "fmt"

type condition uint8

const (
	condAlways condition = iota
	condNZ
	condZ
	condNC
	condC
)

func (c *CPU) conditionMet(cond condition) bool {
	switch cond {
	case condAlways:
		return true
	case condNZ:
		return !c.isFlagSet(FlagZero)
	case condZ:
		return c.isFlagSet(FlagZero)
	case condNC:
		return !c.isFlagSet(FlagCarry)
	case condC:
		return c.isFlagSet(FlagCarry)
	}
	return false
}

// jumpRelative implements JR (cc), r8. The offset byte is always read
// (it follows the opcode regardless of whether the jump is taken); a
// taken jump costs one further internal cycle to apply it to PC.
func (c *CPU) jumpRelative(cond condition) {
	offset := int8(c.readOperand())
	if !c.conditionMet(cond) {
		return
	}
	c.PC = uint16(int32(c.PC) + int32(offset))
	c.chargeCycle()
}

// jumpAbsolute implements JP (cc), a16.
func (c *CPU) jumpAbsolute(cond condition) {
	address := c.readOperand16()
	if !c.conditionMet(cond) {
		return
	}
	c.PC = address
	c.chargeCycle()
}

// call implements CALL (cc), a16.
func (c *CPU) call(cond condition) {
	address := c.readOperand16()
	if !c.conditionMet(cond) {
		return
	}
	c.chargeCycle()
	c.push16(c.PC)
	c.PC = address
}

// ret implements RET (cc). The unconditional form skips the condition-
// test cycle the conditional forms spend.
func (c *CPU) ret(cond condition, testCycle bool) {
	if testCycle {
		c.chargeCycle()
	}
	if !c.conditionMet(cond) {
		return
	}
	c.PC = c.pop16()
	c.chargeCycle()
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU) { c.jumpRelative(condAlways) })
	DefineInstruction(0x20, "JR NZ, r8", func(c *CPU) { c.jumpRelative(condNZ) })
	DefineInstruction(0x28, "JR Z, r8", func(c *CPU) { c.jumpRelative(condZ) })
	DefineInstruction(0x30, "JR NC, r8", func(c *CPU) { c.jumpRelative(condNC) })
	DefineInstruction(0x38, "JR C, r8", func(c *CPU) { c.jumpRelative(condC) })

	DefineInstruction(0xC3, "JP a16", func(c *CPU) { c.jumpAbsolute(condAlways) })
	DefineInstruction(0xC2, "JP NZ, a16", func(c *CPU) { c.jumpAbsolute(condNZ) })
	DefineInstruction(0xCA, "JP Z, a16", func(c *CPU) { c.jumpAbsolute(condZ) })
	DefineInstruction(0xD2, "JP NC, a16", func(c *CPU) { c.jumpAbsolute(condNC) })
	DefineInstruction(0xDA, "JP C, a16", func(c *CPU) { c.jumpAbsolute(condC) })
	DefineInstruction(0xE9, "JP (HL)", func(c *CPU) { c.PC = c.HL.Uint16() })

	DefineInstruction(0xCD, "CALL a16", func(c *CPU) { c.call(condAlways) })
	DefineInstruction(0xC4, "CALL NZ, a16", func(c *CPU) { c.call(condNZ) })
	DefineInstruction(0xCC, "CALL Z, a16", func(c *CPU) { c.call(condZ) })
	DefineInstruction(0xD4, "CALL NC, a16", func(c *CPU) { c.call(condNC) })
	DefineInstruction(0xDC, "CALL C, a16", func(c *CPU) { c.call(condC) })

	DefineInstruction(0xC9, "RET", func(c *CPU) { c.ret(condAlways, false) })
	DefineInstruction(0xC0, "RET NZ", func(c *CPU) { c.ret(condNZ, true) })
	DefineInstruction(0xC8, "RET Z", func(c *CPU) { c.ret(condZ, true) })
	DefineInstruction(0xD0, "RET NC", func(c *CPU) { c.ret(condNC, true) })
	DefineInstruction(0xD8, "RET C", func(c *CPU) { c.ret(condC, true) })

	DefineInstruction(0xD9, "RETI", func(c *CPU) {
		c.PC = c.pop16()
		c.chargeCycle()
		c.ime = ImeEnablePending
	})

	generateRSTInstructions()
}

// generateRSTInstructions fills the eight RST vectors at 0x00, 0x08, ...
// 0x38, each pushing PC and jumping to its fixed low-memory address.
func generateRSTInstructions() {
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 8
		opcode := 0xC7 + i*8
		DefineInstruction(opcode, fmt.Sprintf("RST %02XH", vector), func(c *CPU) {
			c.chargeCycle()
			c.push16(c.PC)
			c.PC = vector
		})
	}
}
