package cpu

import "fmt"

// shiftLeftArithmetic shifts value left by one, bit 0 becomes 0, bit 7
// feeds the carry flag.
func (c *CPU) shiftLeftArithmetic(value uint8) uint8 {
	carry := value&0x80 != 0
	result := value << 1
	c.setFlags(result == 0, false, false, carry)
	return result
}

// shiftRightArithmetic shifts value right by one, bit 7 is preserved
// (sign-extending), bit 0 feeds the carry flag.
func (c *CPU) shiftRightArithmetic(value uint8) uint8 {
	carry := value&0x01 != 0
	result := value>>1 | value&0x80
	c.setFlags(result == 0, false, false, carry)
	return result
}

// shiftRightLogical shifts value right by one, bit 7 becomes 0, bit 0
// feeds the carry flag.
func (c *CPU) shiftRightLogical(value uint8) uint8 {
	carry := value&0x01 != 0
	result := value >> 1
	c.setFlags(result == 0, false, false, carry)
	return result
}

func init() {
	type op struct {
		base  uint8
		name  string
		apply func(c *CPU, value uint8) uint8
	}
	ops := []op{
		{0x20, "SLA", (*CPU).shiftLeftArithmetic},
		{0x28, "SRA", (*CPU).shiftRightArithmetic},
		{0x38, "SRL", (*CPU).shiftRightLogical},
	}

	for _, o := range ops {
		o := o
		for src := uint8(0); src < 8; src++ {
			opcode := o.base + src
			if src == 6 {
				DefineInstructionCB(opcode, fmt.Sprintf("%s (HL)", o.name), func(c *CPU) {
					v := c.readByte(c.HL.Uint16())
					c.writeByte(c.HL.Uint16(), o.apply(c, v))
				})
				continue
			}
			s := src
			DefineInstructionCB(opcode, fmt.Sprintf("%s %s", o.name, registerNames[s]), func(c *CPU) {
				r := c.registerIndex(s)
				*r = o.apply(c, *r)
			})
		}
	}
}
