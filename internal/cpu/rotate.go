package cpu

import "fmt"

// rotateLeft rotates value left by one bit, feeding bit 7 into the carry
// flag. Bit 0 receives the old bit 7, or the old carry when throughCarry
// is set.
func (c *CPU) rotateLeft(value uint8, throughCarry bool) uint8 {
	bit7 := value&0x80 != 0
	var result uint8
	if throughCarry {
		carryIn := uint8(0)
		if c.isFlagSet(FlagCarry) {
			carryIn = 1
		}
		result = value<<1 | carryIn
	} else {
		result = value<<1 | boolToBit(bit7)
	}
	c.setFlags(result == 0, false, false, bit7)
	return result
}

// rotateRight rotates value right by one bit, feeding bit 0 into the
// carry flag. Bit 7 receives the old bit 0, or the old carry when
// throughCarry is set.
func (c *CPU) rotateRight(value uint8, throughCarry bool) uint8 {
	bit0 := value&0x01 != 0
	var result uint8
	if throughCarry {
		carryIn := uint8(0)
		if c.isFlagSet(FlagCarry) {
			carryIn = 1
		}
		result = value>>1 | carryIn<<7
	} else {
		result = value>>1 | boolToBit(bit0)<<7
	}
	c.setFlags(result == 0, false, false, bit0)
	return result
}

func boolToBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func init() {
	// Accumulator forms always clear Z regardless of the result, unlike
	// their CB-prefixed counterparts which compute Z normally.
	DefineInstruction(0x07, "RLCA", func(c *CPU) {
		c.A = c.rotateLeft(c.A, false)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x17, "RLA", func(c *CPU) {
		c.A = c.rotateLeft(c.A, true)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x0F, "RRCA", func(c *CPU) {
		c.A = c.rotateRight(c.A, false)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x1F, "RRA", func(c *CPU) {
		c.A = c.rotateRight(c.A, true)
		c.clearFlag(FlagZero)
	})

	generateRotateInstructions()
}

// generateRotateInstructions fills the CB page's rotate block: RLC/RRC
// (0x00-0x0F) and RL/RR (0x10-0x1F), across B,C,D,E,H,L,(HL),A.
func generateRotateInstructions() {
	type op struct {
		base         uint8
		name         string
		throughCarry bool
		left         bool
	}
	ops := []op{
		{0x00, "RLC", false, true},
		{0x08, "RRC", false, false},
		{0x10, "RL", true, true},
		{0x18, "RR", true, false},
	}

	for _, o := range ops {
		o := o
		for src := uint8(0); src < 8; src++ {
			opcode := o.base + src

			if src == 6 {
				name := fmt.Sprintf("%s (HL)", o.name)
				left, throughCarry := o.left, o.throughCarry
				DefineInstructionCB(opcode, name, func(c *CPU) {
					v := c.readByte(c.HL.Uint16())
					var result uint8
					if left {
						result = c.rotateLeft(v, throughCarry)
					} else {
						result = c.rotateRight(v, throughCarry)
					}
					c.writeByte(c.HL.Uint16(), result)
				})
				continue
			}

			s := src
			left, throughCarry := o.left, o.throughCarry
			DefineInstructionCB(opcode, fmt.Sprintf("%s %s", o.name, registerNames[s]), func(c *CPU) {
				r := c.registerIndex(s)
				if left {
					*r = c.rotateLeft(*r, throughCarry)
				} else {
					*r = c.rotateRight(*r, throughCarry)
				}
			})
		}
	}
}
