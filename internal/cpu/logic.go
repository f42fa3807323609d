package cpu

import "fmt"

// and implements AND A, value: H always set, Z computed, N/C cleared.
func (c *CPU) and(value uint8) {
	c.A &= value
	c.setFlags(c.A == 0, false, true, false)
}

// or implements OR A, value: Z computed, N/H/C all cleared.
func (c *CPU) or(value uint8) {
	c.A |= value
	c.setFlags(c.A == 0, false, false, false)
}

// xor implements XOR A, value: Z computed, N/H/C all cleared.
func (c *CPU) xor(value uint8) {
	c.A ^= value
	c.setFlags(c.A == 0, false, false, false)
}

func init() {
	type op struct {
		row   uint8
		name  string
		apply func(c *CPU, value uint8)
		imm   uint8
	}
	ops := []op{
		{4, "AND", (*CPU).and, 0xE6},
		{5, "XOR", (*CPU).xor, 0xEE},
		{6, "OR", (*CPU).or, 0xF6},
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
}
