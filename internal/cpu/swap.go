package cpu

import "fmt"

// swap exchanges the high and low nibbles of value; Z computed, N/H/C
// all cleared.
func (c *CPU) swap(value uint8) uint8 {
	result := value<<4 | value>>4
	c.setFlags(result == 0, false, false, false)
	return result
}

func init() {
	for src := uint8(0); src < 8; src++ {
		opcode := 0x30 + src
		if src == 6 {
			DefineInstructionCB(opcode, "SWAP (HL)", func(c *CPU) {
				v := c.readByte(c.HL.Uint16())
				c.writeByte(c.HL.Uint16(), c.swap(v))
			})
			continue
		}
		s := src
		DefineInstructionCB(opcode, fmt.Sprintf("SWAP %s", registerNames[s]), func(c *CPU) {
			r := c.registerIndex(s)
			*r = c.swap(*r)
		})
	}
}
