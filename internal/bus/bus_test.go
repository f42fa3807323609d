package bus

import (
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/wrenfield/dmgcore/internal/cartridge"
	"github.com/wrenfield/dmgcore/internal/interrupts"
	"github.com/wrenfield/dmgcore/internal/timer"
)

func newTestBus() *Bus {
	irq := interrupts.New()
	return &Bus{
		Cart:       nopCart{},
		Video:      &NullVideo{},
		Audio:      NullAudio{},
		Interrupts: irq,
		Timer:      timer.New(irq),
		Log:        logrus.New(),
	}
}

func TestWorkRAMEchoMirror(t *testing.T) {
	b := newTestBus()
	b.Write(0xC010, 0x42)
	if got := b.Read(0xE010); got != 0x42 {
		t.Fatalf("echo Read(0xE010) = %#02x, want 0x42", got)
	}
	b.Write(0xE020, 0x7E)
	if got := b.Read(0xC020); got != 0x7E {
		t.Fatalf("Read(0xC020) after echo write = %#02x, want 0x7E", got)
	}
}

func TestUnusableRegionDiscardsWrites(t *testing.T) {
	b := newTestBus()
	b.Write(0xFEA0, 0x99)
	if got := b.Read(0xFEA0); got != 0xFF {
		t.Fatalf("Read(0xFEA0) = %#02x, want 0xFF", got)
	}
}

func TestOAMDMACopiesFromSourceWindow(t *testing.T) {
	b := newTestBus()
	for i := uint16(0); i < 0xA0; i++ {
		b.Write(0xC000+i, uint8(i))
	}
	b.Write(0xFF46, 0xC0)
	for i := uint16(0); i < 0xA0; i++ {
		if got := b.Read(0xFE00 + i); got != uint8(i) {
			t.Fatalf("OAM[%d] = %#02x, want %#02x", i, got, uint8(i))
		}
	}
}

func TestHighRAMAndInterruptEnable(t *testing.T) {
	b := newTestBus()
	b.Write(0xFF80, 0x11)
	if got := b.Read(0xFF80); got != 0x11 {
		t.Fatalf("Read(0xFF80) = %#02x, want 0x11", got)
	}
	b.Write(0xFFFF, 0x1F)
	if got := b.Read(0xFFFF); got != 0x1F {
		t.Fatalf("Read(0xFFFF) = %#02x, want 0x1F", got)
	}
}

func TestUnmappedIOPortReadsHighAndDoesNotPanic(t *testing.T) {
	b := newTestBus()
	if got := b.Read(0xFF01); got != 0xFF { // SB, not wired to a serial collaborator
		t.Fatalf("Read(0xFF01) = %#02x, want 0xFF", got)
	}
}

func TestIORegistersRouteToTimerAndInterrupts(t *testing.T) {
	b := newTestBus()
	b.Write(0xFF07, 0x05) // TAC: enabled, clock select 1
	if got := b.Read(0xFF07); got != 0xFD { // unused upper bits read back as 1
		t.Fatalf("Read(0xFF07) = %#02x, want 0xFD", got)
	}
	b.Write(0xFF0F, 0x1F)
	if got := b.Read(0xFF0F); got&0x1F != 0x1F {
		t.Fatalf("Read(0xFF0F) = %#02x, want low 5 bits set", got)
	}
}

// nopCart satisfies cartridge.Cartridge with a flat, unbanked ROM and no
// RAM, enough to exercise bus routing without a real cartridge.
type nopCart struct{}

func (nopCart) Read(address uint16) uint8         { return 0xFF }
func (nopCart) Write(address uint16, value uint8) {}
func (nopCart) RAM() []byte                       { return nil }
func (nopCart) LoadRAM(data []byte)               {}
func (nopCart) Header() cartridge.Header          { return cartridge.Header{} }
