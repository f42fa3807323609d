package cpu

import "fmt"

// increment adds 1 to value, setting Z/H (N always cleared) and leaving
// carry untouched, the shared rule for every INC r and INC (HL).
func (c *CPU) increment(value uint8) uint8 {
	result := value + 1
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	if value&0x0F == 0x0F {
		c.setFlag(FlagHalfCarry)
	} else {
		c.clearFlag(FlagHalfCarry)
	}
	return result
}

// decrement subtracts 1 from value, setting Z/H/N and leaving carry
// untouched, the shared rule for every DEC r and DEC (HL).
func (c *CPU) decrement(value uint8) uint8 {
	result := value - 1
	c.shouldZeroFlag(result)
	c.setFlag(FlagSubtract)
	if value&0x0F == 0x00 {
		c.setFlag(FlagHalfCarry)
	} else {
		c.clearFlag(FlagHalfCarry)
	}
	return result
}

// add implements the 8-bit ADD/ADC family; Z/H/C all computed from the
// result, N always cleared.
func (c *CPU) add(value uint8, useCarry bool) {
	carryIn := uint8(0)
	if useCarry && c.isFlagSet(FlagCarry) {
		carryIn = 1
	}
	result := uint16(c.A) + uint16(value) + uint16(carryIn)
	halfCarry := (c.A&0x0F)+(value&0x0F)+carryIn > 0x0F
	c.setFlags(uint8(result) == 0, false, halfCarry, result > 0xFF)
	c.A = uint8(result)
}

// sub implements the 8-bit SUB/SBC/CP family; when compareOnly is set the
// result is not written back to A (CP).
func (c *CPU) sub(value uint8, useCarry bool, compareOnly bool) {
	carryIn := uint8(0)
	if useCarry && c.isFlagSet(FlagCarry) {
		carryIn = 1
	}
	result := int16(c.A) - int16(value) - int16(carryIn)
	halfCarry := int16(c.A&0x0F)-int16(value&0x0F)-int16(carryIn) < 0
	c.setFlags(uint8(result) == 0, true, halfCarry, result < 0)
	if !compareOnly {
		c.A = uint8(result)
	}
}

// addHLRR implements ADD HL, rr: Z untouched, N cleared, H/C computed on
// the 16-bit addition.
func (c *CPU) addHLRR(value uint16) {
	hl := c.HL.Uint16()
	result := uint32(hl) + uint32(value)
	halfCarry := (hl&0x0FFF)+(value&0x0FFF) > 0x0FFF
	c.clearFlag(FlagSubtract)
	if halfCarry {
		c.setFlag(FlagHalfCarry)
	} else {
		c.clearFlag(FlagHalfCarry)
	}
	if result > 0xFFFF {
		c.setFlag(FlagCarry)
	} else {
		c.clearFlag(FlagCarry)
	}
	c.HL.SetUint16(uint16(result))
}

// addSPSigned implements the shared SP+r8 arithmetic used by both
// ADD SP, r8 and LD HL, SP+r8: Z and N always cleared, H/C computed as
// if adding the unsigned low bytes (the documented, if surprising,
// hardware behaviour for both opcodes).
func (c *CPU) addSPSigned() uint16 {
	offset := int8(c.readOperand())
	sp := c.SP
	result := uint16(int32(sp) + int32(offset))

	halfCarry := (sp&0x0F)+uint16(uint8(offset)&0x0F) > 0x0F
	carry := (sp&0xFF)+uint16(uint8(offset)) > 0xFF

	c.setFlags(false, false, halfCarry, carry)
	return result
}

func init() {
	// INC/DEC 8-bit registers.
	for i := uint8(0); i < 8; i++ {
		if i == 6 {
			continue // (HL) handled below as a memory operand
		}
		idx := i
		DefineInstruction(0x04+idx*8, fmt.Sprintf("INC %s", registerNames[idx]), func(c *CPU) {
			r := c.registerIndex(idx)
			*r = c.increment(*r)
		})
		DefineInstruction(0x05+idx*8, fmt.Sprintf("DEC %s", registerNames[idx]), func(c *CPU) {
			r := c.registerIndex(idx)
			*r = c.decrement(*r)
		})
	}

	DefineInstruction(0x34, "INC (HL)", func(c *CPU) {
		v := c.readByte(c.HL.Uint16())
		c.writeByte(c.HL.Uint16(), c.increment(v))
	})
	DefineInstruction(0x35, "DEC (HL)", func(c *CPU) {
		v := c.readByte(c.HL.Uint16())
		c.writeByte(c.HL.Uint16(), c.decrement(v))
	})

	// INC/DEC 16-bit register pairs: no flags affected, costs one extra
	// internal cycle.
	pairInc := func(get func(*CPU) uint16, set func(*CPU, uint16), delta int16) func(*CPU) {
		return func(c *CPU) {
			set(c, uint16(int32(get(c))+int32(delta)))
			c.chargeCycle()
		}
	}
	DefineInstruction(0x03, "INC BC", pairInc(func(c *CPU) uint16 { return c.BC.Uint16() }, func(c *CPU, v uint16) { c.BC.SetUint16(v) }, 1))
	DefineInstruction(0x0B, "DEC BC", pairInc(func(c *CPU) uint16 { return c.BC.Uint16() }, func(c *CPU, v uint16) { c.BC.SetUint16(v) }, -1))
	DefineInstruction(0x13, "INC DE", pairInc(func(c *CPU) uint16 { return c.DE.Uint16() }, func(c *CPU, v uint16) { c.DE.SetUint16(v) }, 1))
	DefineInstruction(0x1B, "DEC DE", pairInc(func(c *CPU) uint16 { return c.DE.Uint16() }, func(c *CPU, v uint16) { c.DE.SetUint16(v) }, -1))
	DefineInstruction(0x23, "INC HL", pairInc(func(c *CPU) uint16 { return c.HL.Uint16() }, func(c *CPU, v uint16) { c.HL.SetUint16(v) }, 1))
	DefineInstruction(0x2B, "DEC HL", pairInc(func(c *CPU) uint16 { return c.HL.Uint16() }, func(c *CPU, v uint16) { c.HL.SetUint16(v) }, -1))
	DefineInstruction(0x33, "INC SP", func(c *CPU) { c.SP++; c.chargeCycle() })
	DefineInstruction(0x3B, "DEC SP", func(c *CPU) { c.SP--; c.chargeCycle() })

	// ADD HL, rr.
	DefineInstruction(0x09, "ADD HL, BC", func(c *CPU) { c.addHLRR(c.BC.Uint16()); c.chargeCycle() })
	DefineInstruction(0x19, "ADD HL, DE", func(c *CPU) { c.addHLRR(c.DE.Uint16()); c.chargeCycle() })
	DefineInstruction(0x29, "ADD HL, HL", func(c *CPU) { c.addHLRR(c.HL.Uint16()); c.chargeCycle() })
	DefineInstruction(0x39, "ADD HL, SP", func(c *CPU) { c.addHLRR(c.SP); c.chargeCycle() })

	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU) {
		c.SP = c.addSPSigned()
		c.chargeCycle()
		c.chargeCycle()
	})

	// PUSH/POP.
	DefineInstruction(0xC5, "PUSH BC", func(c *CPU) { c.chargeCycle(); c.push16(c.BC.Uint16()) })
	DefineInstruction(0xD5, "PUSH DE", func(c *CPU) { c.chargeCycle(); c.push16(c.DE.Uint16()) })
	DefineInstruction(0xE5, "PUSH HL", func(c *CPU) { c.chargeCycle(); c.push16(c.HL.Uint16()) })
	DefineInstruction(0xF5, "PUSH AF", func(c *CPU) { c.chargeCycle(); c.push16(c.AF.Uint16()) })

	DefineInstruction(0xC1, "POP BC", func(c *CPU) { c.BC.SetUint16(c.pop16()) })
	DefineInstruction(0xD1, "POP DE", func(c *CPU) { c.DE.SetUint16(c.pop16()) })
	DefineInstruction(0xE1, "POP HL", func(c *CPU) { c.HL.SetUint16(c.pop16()) })
	DefineInstruction(0xF1, "POP AF", func(c *CPU) { c.AF.SetUint16(c.pop16() & 0xFFF0) })

	generateArithmeticInstructions()
}

// generateArithmeticInstructions fills the ADD/ADC/SUB/SBC/CP rows of the
// 0x80-0xBF block (across B,C,D,E,H,L,(HL),A) and their immediate-operand
// opcodes 0xC6, 0xCE, 0xD6, 0xDE and 0xFE. The AND/XOR/OR rows and their
// immediate forms are defined in logic.go.
func generateArithmeticInstructions() {
	type op struct {
		row     uint8
		name    string
		apply   func(c *CPU, value uint8)
		imm     uint8
	}
	ops := []op{
		{0, "ADD", func(c *CPU, v uint8) { c.add(v, false) }, 0xC6},
		{1, "ADC", func(c *CPU, v uint8) { c.add(v, true) }, 0xCE},
		{2, "SUB", func(c *CPU, v uint8) { c.sub(v, false, false) }, 0xD6},
		{3, "SBC", func(c *CPU, v uint8) { c.sub(v, true, false) }, 0xDE},
	}

	for _, o := range ops {
		o := o
		for src := uint8(0); src < 8; src++ {
			opcode := 0x80 + o.row*8 + src
			if src == 6 {
				DefineInstruction(opcode, fmt.Sprintf("%s (HL)", o.name), func(c *CPU) {
					o.apply(c, c.readByte(c.HL.Uint16()))
				})
				continue
			}
			s := src
			DefineInstruction(opcode, fmt.Sprintf("%s %s", o.name, registerNames[s]), func(c *CPU) {
				o.apply(c, *c.registerIndex(s))
			})
		}
		DefineInstruction(o.imm, fmt.Sprintf("%s d8", o.name), func(c *CPU) {
			o.apply(c, c.readOperand())
		})
	}

	// CP is SUB without writeback; it lives in the same 0x80-0xBF block
	// but is handled separately from logic.go's AND/OR/XOR rows.
	for src := uint8(0); src < 8; src++ {
		opcode := 0xB8 + src
		if src == 6 {
			DefineInstruction(opcode, "CP (HL)", func(c *CPU) {
				c.sub(c.readByte(c.HL.Uint16()), false, true)
			})
			continue
		}
		s := src
		DefineInstruction(opcode, fmt.Sprintf("CP %s", registerNames[s]), func(c *CPU) {
			c.sub(*c.registerIndex(s), false, true)
		})
	}
	DefineInstruction(0xFE, "CP d8", func(c *CPU) {
		c.sub(c.readOperand(), false, true)
	})
}
