package cpu

import "fmt"

// testBit sets FlagZero from bit b of value, clears N, sets H, leaves C.
func (c *CPU) testBit(value uint8, bit uint8) {
	c.shouldZeroFlag(value & (1 << bit))
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

func setBit(value uint8, bit uint8) uint8   { return value | 1<<bit }
func clearBit(value uint8, bit uint8) uint8 { return value &^ (1 << bit) }

// init fills the CB page's remaining three quarters:
// BIT b,r (0x40-0x7F), RES b,r (0x80-0xBF), SET b,r (0xC0-0xFF). Each
// quarter holds 8 bits x 8 registers, with register index 6 standing in
// for (HL) as a memory operand.
func init() {
	for bit := uint8(0); bit < 8; bit++ {
		for src := uint8(0); src < 8; src++ {
			b, s := bit, src

			bitOpcode := 0x40 + b*8 + s
			resOpcode := 0x80 + b*8 + s
			setOpcode := 0xC0 + b*8 + s

			if s == 6 {
				DefineInstructionCB(bitOpcode, fmt.Sprintf("BIT %d, (HL)", b), func(c *CPU) {
					c.testBit(c.readByte(c.HL.Uint16()), b)
				})
				DefineInstructionCB(resOpcode, fmt.Sprintf("RES %d, (HL)", b), func(c *CPU) {
					v := c.readByte(c.HL.Uint16())
					c.writeByte(c.HL.Uint16(), clearBit(v, b))
				})
				DefineInstructionCB(setOpcode, fmt.Sprintf("SET %d, (HL)", b), func(c *CPU) {
					v := c.readByte(c.HL.Uint16())
					c.writeByte(c.HL.Uint16(), setBit(v, b))
				})
				continue
			}

			DefineInstructionCB(bitOpcode, fmt.Sprintf("BIT %d, %s", b, registerNames[s]), func(c *CPU) {
				c.testBit(*c.registerIndex(s), b)
			})
			DefineInstructionCB(resOpcode, fmt.Sprintf("RES %d, %s", b, registerNames[s]), func(c *CPU) {
				r := c.registerIndex(s)
				*r = clearBit(*r, b)
			})
			DefineInstructionCB(setOpcode, fmt.Sprintf("SET %d, %s", b, registerNames[s]), func(c *CPU) {
				r := c.registerIndex(s)
				*r = setBit(*r, b)
			})
		}
	}
}
