// Package cpu implements the Sharp LR35902 instruction set: the fetch-
// decode-execute loop, its flat main and CB-prefixed opcode tables, and
// the interrupt-dispatch and timer-tick protocol each Step performs.
package cpu

import (
	"fmt"

	"github.com/wrenfield/dmgcore/internal/interrupts"
	"github.com/wrenfield/dmgcore/internal/timer"
	"github.com/wrenfield/dmgcore/internal/types"
)

// Bus is the narrow memory capability the CPU needs. internal/bus.Bus
// satisfies it; tests substitute a flat byte array.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Register is an 8-bit architectural register.
type Register = types.Register

// ImeState is an explicit state machine for the master interrupt enable
// flag, replacing the fragile countdown-counter approach (enableIRQ/
// disableIRQ ticking down to zero) with a value that can only ever be in
// one of four states. EI and DI both take effect one instruction after
// they execute.
type ImeState uint8

const (
	ImeDisabled ImeState = iota
	ImeEnablePending
	ImeEnabled
	ImeDisablePending
)

// UnimplementedOpcodeError is the value the CPU panics with whenever it
// decodes one of the eleven opcodes the LR35902 leaves undefined. Step
// does not recover it, so the panic ends the run and prints the opcode
// and PC.
type UnimplementedOpcodeError struct {
	Opcode uint8
	PC     uint16
	CB     bool
}

func (e *UnimplementedOpcodeError) Error() string {
	if e.CB {
		return fmt.Sprintf("cpu: unimplemented opcode CB %#02x at PC=%#04x", e.Opcode, e.PC)
	}
	return fmt.Sprintf("cpu: unimplemented opcode %#02x at PC=%#04x", e.Opcode, e.PC)
}

// CPU holds the LR35902's architectural state: the register file, the
// stack/program counters, and the latches Step consults every call.
type CPU struct {
	types.Registers

	SP, PC uint16

	ime      ImeState
	halted   bool
	stopped  bool

	// cyclesDelta is the machine-cycle cost of the instruction just
	// executed; lastCycles is what the *next* Step's timer tick
	// consumes, per the mandated ordering (timer advances by the
	// previous instruction's cost, not the one about to run).
	cyclesDelta uint8
	lastCycles  uint8
	totalCycles uint64

	bus        Bus
	interrupts *interrupts.Controller
	timer      *timer.Controller
}

// New returns a CPU at the documented post-boot-ROM reset state, wired
// to bus for memory access and to irq/tmr for interrupt dispatch and
// timer advancement.
func New(bus Bus, irq *interrupts.Controller, tmr *timer.Controller) *CPU {
	c := &CPU{
		bus:        bus,
		interrupts: irq,
		timer:      tmr,
	}
	c.AF = &types.RegisterPair{High: &c.A, Low: &c.F}
	c.BC = &types.RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &types.RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &types.RegisterPair{High: &c.H, Low: &c.L}

	c.AF.SetUint16(0x01B0)
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100

	return c
}

// TotalCycles is the monotonic machine-cycle counter consulted by tests
// and by any driver pacing real-time playback against CPU progress.
func (c *CPU) TotalCycles() uint64 { return c.totalCycles }

// Halted reports whether the CPU is in the low-power HALT state.
func (c *CPU) Halted() bool { return c.halted }

// Step executes exactly one instruction, or one cycle of HALT, or one
// interrupt dispatch: it first advances the timer by the previous
// instruction's cost, then checks for an interrupt. Only one of {dispatch, halt-spin, fetch+execute} happens
// per call: dispatching an interrupt or spinning in HALT consumes the
// entire step, the same way HALT's "charge 1 cycle and return" does.
func (c *CPU) Step() uint8 {
	c.cyclesDelta = 0
	c.tickTimer(c.lastCycles)

	if !c.dispatchInterrupt() {
		// commitIME runs here, before the fetch, so that a pending
		// EI/DI scheduled by the *previous* step's instruction takes
		// effect only after this step's instruction (the one
		// "following" EI/DI) has already passed its own interrupt
		// check above — giving EI/DI their documented one-instruction
		// delay without a countdown counter.
		c.commitIME()

		if c.halted {
			c.chargeCycle()
		} else {
			opcode := c.fetch()
			c.execute(opcode)
		}
	}

	c.totalCycles += uint64(c.cyclesDelta)
	c.lastCycles = c.cyclesDelta
	return c.cyclesDelta
}

func (c *CPU) tickTimer(cycles uint8) {
	for i := uint8(0); i < cycles; i++ {
		c.timer.Step()
	}
}

// dispatchInterrupt implements step (b): sample IF&IE&0x1F, wake from
// HALT regardless of IME, and service the highest-priority pending
// interrupt when IME is set. Reports whether it actually serviced one,
// so Step knows not to also fetch this call.
func (c *CPU) dispatchInterrupt() bool {
	if !c.interrupts.Pending() {
		return false
	}
	c.halted = false

	if c.ime != ImeEnabled {
		return false
	}
	c.ime = ImeDisabled
	vector := c.interrupts.AckHighest()

	c.chargeCycle() // internal delay
	c.chargeCycle() // internal delay
	c.push16(c.PC)  // 2 machine cycles (high byte, low byte)
	c.PC = vector
	c.chargeCycle() // load PC from vector
	return true
}

// chargeCycle accounts for one machine cycle (the unit §4.1's cycle
// costs are quoted in); each memory access costs exactly one.
func (c *CPU) chargeCycle() {
	c.cyclesDelta++
}

// fetch implements step (d): read the opcode at PC and advance PC.
func (c *CPU) fetch() uint8 {
	v := c.bus.Read(c.PC)
	c.chargeCycle()
	c.PC++
	return v
}

// readOperand reads one immediate byte following the opcode.
func (c *CPU) readOperand() uint8 {
	v := c.bus.Read(c.PC)
	c.chargeCycle()
	c.PC++
	return v
}

// readOperand16 reads a little-endian 16-bit immediate: low byte first.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

func (c *CPU) readByte(address uint16) uint8 {
	v := c.bus.Read(address)
	c.chargeCycle()
	return v
}

func (c *CPU) writeByte(address uint16, value uint8) {
	c.bus.Write(address, value)
	c.chargeCycle()
}

// push16 implements the documented stack protocol: high byte at SP-1,
// low byte at SP-2, then SP -= 2.
func (c *CPU) push16(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

func (c *CPU) pop16() uint16 {
	low := c.readByte(c.SP)
	c.SP++
	high := c.readByte(c.SP)
	c.SP++
	return uint16(high)<<8 | uint16(low)
}

// commitIME implements step (g): EI/DI take effect one instruction
// after the opcode that scheduled them.
func (c *CPU) commitIME() {
	switch c.ime {
	case ImeEnablePending:
		c.ime = ImeEnabled
	case ImeDisablePending:
		c.ime = ImeDisabled
	}
}

// execute implements step (e): decode opcode and run its handler,
// following into the CB page on 0xCB.
func (c *CPU) execute(opcode uint8) {
	if opcode == 0xCB {
		cbOpcode := c.fetch()
		instr := instructionSetCB[cbOpcode]
		if instr.fn == nil {
			panic(&UnimplementedOpcodeError{Opcode: cbOpcode, PC: c.PC - 2, CB: true})
		}
		instr.fn(c)
		return
	}

	instr := instructionSet[opcode]
	if instr.fn == nil {
		panic(&UnimplementedOpcodeError{Opcode: opcode, PC: c.PC - 1})
	}
	instr.fn(c)
}

// registerIndex returns the architectural register addressed by the
// standard 3-bit field used throughout the main and CB opcode tables:
// 0:B 1:C 2:D 3:E 4:H 5:L 7:A. Index 6 addresses (HL) and is handled by
// callers before reaching here, since it is a memory operand, not a
// register.
func (c *CPU) registerIndex(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("cpu: registerIndex called with memory index %d", index))
}

var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func (c *CPU) registerName(index uint8) string {
	return registerNames[index]
}
