package cpu

import (
	"fmt"

	"github.com/wrenfield/dmgcore/internal/types"
)

// loadRegisterToRegister implements LD r, r'.
func (c *CPU) loadRegisterToRegister(dst *Register, src Register) {
	*dst = src
}

// loadImmediate8 implements LD r, d8.
func (c *CPU) loadImmediate8(dst *Register) {
	*dst = c.readOperand()
}

// loadImmediate16 implements LD rr, d16.
func (c *CPU) loadImmediate16(dst *types.RegisterPair) {
	dst.SetUint16(c.readOperand16())
}

func init() {
	DefineInstruction(0x01, "LD BC, d16", func(c *CPU) { c.loadImmediate16(c.BC) })
	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) { c.writeByte(c.BC.Uint16(), c.A) })
	DefineInstruction(0x06, "LD B, d8", func(c *CPU) { c.loadImmediate8(&c.B) })
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU) {
		address := c.readOperand16()
		c.writeByte(address, uint8(c.SP))
		c.writeByte(address+1, uint8(c.SP>>8))
	})
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU) { c.A = c.readByte(c.BC.Uint16()) })
	DefineInstruction(0x0E, "LD C, d8", func(c *CPU) { c.loadImmediate8(&c.C) })

	DefineInstruction(0x11, "LD DE, d16", func(c *CPU) { c.loadImmediate16(c.DE) })
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) { c.writeByte(c.DE.Uint16(), c.A) })
	DefineInstruction(0x16, "LD D, d8", func(c *CPU) { c.loadImmediate8(&c.D) })
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU) { c.A = c.readByte(c.DE.Uint16()) })
	DefineInstruction(0x1E, "LD E, d8", func(c *CPU) { c.loadImmediate8(&c.E) })

	DefineInstruction(0x21, "LD HL, d16", func(c *CPU) { c.loadImmediate16(c.HL) })
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x26, "LD H, d8", func(c *CPU) { c.loadImmediate8(&c.H) })
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x2E, "LD L, d8", func(c *CPU) { c.loadImmediate8(&c.L) })

	DefineInstruction(0x31, "LD SP, d16", func(c *CPU) { c.SP = c.readOperand16() })
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})
	DefineInstruction(0x36, "LD (HL), d8", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.readOperand())
	})
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})
	DefineInstruction(0x3E, "LD A, d8", func(c *CPU) { c.loadImmediate8(&c.A) })

	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.readOperand()), c.A)
	})
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) { c.writeByte(0xFF00+uint16(c.C), c.A) })
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) { c.writeByte(c.readOperand16(), c.A) })

	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) {
		c.A = c.readByte(0xFF00 + uint16(c.readOperand()))
	})
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) { c.A = c.readByte(0xFF00 + uint16(c.C)) })
	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU) {
		c.HL.SetUint16(c.addSPSigned())
		c.chargeCycle()
	})
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU) {
		c.SP = c.HL.Uint16()
		c.chargeCycle()
	})
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) { c.A = c.readByte(c.readOperand16()) })

	generateLoadRegisterToRegisterInstructions()
}

// generateLoadRegisterToRegisterInstructions fills the regular 0x40-0x7F
// block: every combination of LD r, r' (with row/column 6 standing in
// for (HL) as a memory operand), except 0x76 which is HALT.
func generateLoadRegisterToRegisterInstructions() {
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x40 + dst*8 + src
			if opcode == 0x76 {
				continue // HALT, defined in instruction.go
			}

			switch {
			case dst == 6:
				s := src
				DefineInstruction(opcode, fmt.Sprintf("LD (HL), %s", registerNames[s]), func(c *CPU) {
					c.writeByte(c.HL.Uint16(), *c.registerIndex(s))
				})
			case src == 6:
				d := dst
				DefineInstruction(opcode, fmt.Sprintf("LD %s, (HL)", registerNames[d]), func(c *CPU) {
					*c.registerIndex(d) = c.readByte(c.HL.Uint16())
				})
			default:
				d, s := dst, src
				DefineInstruction(opcode, fmt.Sprintf("LD %s, %s", registerNames[d], registerNames[s]), func(c *CPU) {
					c.loadRegisterToRegister(c.registerIndex(d), *c.registerIndex(s))
				})
			}
		}
	}
}
