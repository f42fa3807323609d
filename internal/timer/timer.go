// Package timer provides the DMG's divider/counter timer. The CPU calls
// Step once per machine cycle consumed (see the CPU↔Timer contract in the
// spec); the timer's own internal pacing is not otherwise observable.
package timer

import "github.com/wrenfield/dmgcore/internal/interrupts"

// periods maps a TAC clock-select value (bits 0-1) to the number of T-cycles
// between TIMA increments: 4096Hz, 262144Hz, 65536Hz, 16384Hz.
var periods = [4]uint16{1024, 16, 64, 256}

// Controller is the timer/divider pair. DIV free-runs regardless of TAC;
// TIMA only advances while TAC's enable bit is set, at the rate TAC
// selects, reloading from TMA and requesting interrupts.TimerFlag on
// overflow.
type Controller struct {
	div uint16 // internal 16-bit divider; DIV is its high byte

	tima uint8
	tma  uint8
	tac  uint8

	counter uint16 // T-cycles accumulated since the last TIMA increment

	irq *interrupts.Controller
}

// New returns a Controller wired to request timer interrupts on irq.
func New(irq *interrupts.Controller) *Controller {
	return &Controller{irq: irq}
}

// Step advances the timer by one machine cycle (4 T-cycles).
func (c *Controller) Step() {
	c.div += 4

	if c.tac&0x04 == 0 {
		return
	}

	c.counter += 4
	period := periods[c.tac&0x03]
	for c.counter >= period {
		c.counter -= period
		c.tima++
		if c.tima == 0 {
			c.tima = c.tma
			c.irq.Request(interrupts.TimerFlag)
		}
	}
}

// ReadDIV returns the upper 8 bits of the internal divider.
func (c *Controller) ReadDIV() uint8 {
	return uint8(c.div >> 8)
}

// WriteDIV resets the divider to 0, regardless of the written value -
// this is the documented behavior of any write to 0xFF04.
func (c *Controller) WriteDIV(uint8) {
	c.div = 0
}

func (c *Controller) ReadTIMA() uint8   { return c.tima }
func (c *Controller) WriteTIMA(v uint8) { c.tima = v }

func (c *Controller) ReadTMA() uint8   { return c.tma }
func (c *Controller) WriteTMA(v uint8) { c.tma = v }

// ReadTAC returns TAC with its unused upper bits read back as 1.
func (c *Controller) ReadTAC() uint8 {
	return c.tac | 0xF8
}

func (c *Controller) WriteTAC(v uint8) { c.tac = v & 0x07 }
