// Package bus implements the Game Boy's 16-bit memory bus: the single
// dispatcher the CPU uses for every read and write, routing to the
// cartridge, video RAM, work RAM, OAM, I/O registers, and high RAM.
package bus

import (
	"github.com/sirupsen/logrus"

	"github.com/wrenfield/dmgcore/internal/cartridge"
	"github.com/wrenfield/dmgcore/internal/interrupts"
	"github.com/wrenfield/dmgcore/internal/timer"
)

// Video is the narrow PPU/display capability the bus talks to: it owns
// VRAM and the 0xFF40-0xFF7F registers, and receives each byte of the
// OAM-DMA block copy. The bus keeps OAM itself and serves CPU reads and
// writes of 0xFE00-0xFE9F without consulting Video.
type Video interface {
	Tick()
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	WriteOAM(offset uint8, value uint8)
}

// Audio is the narrow APU capability the bus talks to. Most Game Boy
// builds have no audio concern worth wiring into the core; NullAudio
// satisfies this for headless operation.
type Audio interface {
	Tick()
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Joypad owns the P1 register and its own interrupt schedule; the bus
// only routes 0xFF00 to it.
type Joypad interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// NullVideo and NullAudio are no-op collaborators for headless
// configurations; New installs them, and cmd/dmgboy runs with them.
type NullVideo struct{ vram, oam [160]byte }

func (NullVideo) Tick()                                  {}
func (v *NullVideo) Read(address uint16) uint8            { return 0xFF }
func (v *NullVideo) Write(address uint16, value uint8)    {}
func (v *NullVideo) WriteOAM(offset uint8, value uint8)   { v.oam[offset] = value }

type NullAudio struct{}

func (NullAudio) Tick()                               {}
func (NullAudio) Read(address uint16) uint8           { return 0xFF }
func (NullAudio) Write(address uint16, value uint8)   {}

// Bus wires the cartridge and RAM regions together behind the flat
// 16-bit address space the CPU sees. Unlike the table-of-function-
// pointers dispatch some Game Boy emulators use (to support remapping
// VRAM banks or the CGB double-speed HDMA controller), a single switch
// is enough here: this core never remaps a region mid-run.
type Bus struct {
	Cart   cartridge.Cartridge
	Video  Video
	Audio  Audio
	Joypad Joypad

	wram [0x2000]byte
	hram [0x7F]byte
	oam  [0xA0]byte

	Interrupts *interrupts.Controller
	Timer      *timer.Controller

	Log logrus.FieldLogger
}

// New wires a Bus around the given cartridge, using no-op Video/Audio/
// Joypad collaborators until AttachVideo/AttachAudio/AttachJoypad are
// called.
func New(cart cartridge.Cartridge) *Bus {
	irq := interrupts.New()
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return &Bus{
		Cart:       cart,
		Video:      &NullVideo{},
		Audio:      NullAudio{},
		Interrupts: irq,
		Timer:      timer.New(irq),
		Log:        log,
	}
}

func (b *Bus) AttachVideo(v Video)   { b.Video = v }
func (b *Bus) AttachAudio(a Audio)   { b.Audio = a }
func (b *Bus) AttachJoypad(j Joypad) { b.Joypad = j }

// Read returns the byte mapped at address, per the address map in §3.
func (b *Bus) Read(address uint16) uint8 {
	switch {
	case address < 0x8000, address >= 0xA000 && address < 0xC000:
		return b.Cart.Read(address)
	case address >= 0x8000 && address < 0xA000:
		return b.Video.Read(address)
	case address >= 0xC000 && address < 0xE000:
		return b.wram[address-0xC000]
	case address >= 0xE000 && address < 0xFE00:
		return b.wram[address-0xE000] // echo mirrors 0xC000-0xDDFF
	case address >= 0xFE00 && address < 0xFEA0:
		return b.oam[address-0xFE00]
	case address >= 0xFEA0 && address < 0xFF00:
		return 0xFF // unusable
	case address == 0xFF00:
		if b.Joypad != nil {
			return b.Joypad.Read(address)
		}
		return 0xFF
	case address == 0xFF04:
		return b.Timer.ReadDIV()
	case address == 0xFF05:
		return b.Timer.ReadTIMA()
	case address == 0xFF06:
		return b.Timer.ReadTMA()
	case address == 0xFF07:
		return b.Timer.ReadTAC()
	case address == 0xFF0F:
		return b.Interrupts.ReadIF()
	case address >= 0xFF10 && address < 0xFF40:
		return b.Audio.Read(address)
	case address >= 0xFF40 && address < 0xFF80:
		return b.Video.Read(address)
	case address >= 0xFF80 && address < 0xFFFF:
		return b.hram[address-0xFF80]
	case address == 0xFFFF:
		return b.Interrupts.ReadIE()
	default:
		b.Log.Debugf("bus: read from unmapped I/O port %#04x", address)
		return 0xFF
	}
}

// Write stores value at address, per the address map in §3. Writing
// 0xFF46 triggers a 160-byte OAM-DMA block copy from value<<8.
func (b *Bus) Write(address uint16, value uint8) {
	switch {
	case address < 0x8000, address >= 0xA000 && address < 0xC000:
		b.Cart.Write(address, value)
	case address >= 0x8000 && address < 0xA000:
		b.Video.Write(address, value)
	case address >= 0xC000 && address < 0xE000:
		b.wram[address-0xC000] = value
	case address >= 0xE000 && address < 0xFE00:
		b.wram[address-0xE000] = value
	case address >= 0xFE00 && address < 0xFEA0:
		b.oam[address-0xFE00] = value
	case address >= 0xFEA0 && address < 0xFF00:
		// unusable, writes discarded
	case address == 0xFF00:
		if b.Joypad != nil {
			b.Joypad.Write(address, value)
		}
	case address == 0xFF04:
		b.Timer.WriteDIV(value)
	case address == 0xFF05:
		b.Timer.WriteTIMA(value)
	case address == 0xFF06:
		b.Timer.WriteTMA(value)
	case address == 0xFF07:
		b.Timer.WriteTAC(value)
	case address == 0xFF0F:
		b.Interrupts.WriteIF(value)
	case address == 0xFF46:
		b.dmaTransfer(value)
	case address >= 0xFF10 && address < 0xFF40:
		b.Audio.Write(address, value)
	case address >= 0xFF40 && address < 0xFF80:
		b.Video.Write(address, value)
	case address >= 0xFF80 && address < 0xFFFF:
		b.hram[address-0xFF80] = value
	case address == 0xFFFF:
		b.Interrupts.WriteIE(value)
	}
}

// dmaTransfer copies 160 bytes from value<<8 into OAM, one byte per
// call into the video collaborator's WriteOAM.
func (b *Bus) dmaTransfer(value uint8) {
	src := uint16(value) << 8
	b.Log.Debugf("bus: OAM DMA triggered from source %#04x", src)
	for i := uint16(0); i < 0xA0; i++ {
		v := b.Read(src + i)
		b.oam[i] = v
		b.Video.WriteOAM(uint8(i), v)
	}
}
