package cartridge

import "testing"

func makeROM(size int, cartType Type, romCode, ramCode uint8) []byte {
	rom := make([]byte, size)
	rom[0x147] = uint8(cartType)
	rom[0x148] = romCode
	rom[0x149] = ramCode
	return rom
}

func TestLoadUnsupportedType(t *testing.T) {
	rom := makeROM(0x8000, Type(0xFE), 0x00, 0x00)
	_, err := Load(rom)
	if err == nil {
		t.Fatal("expected an error for an unrecognised cartridge type")
	}
	var unsupported *UnsupportedMBCError
	if _, ok := err.(*UnsupportedMBCError); !ok {
		t.Fatalf("expected *UnsupportedMBCError, got %T", err)
	}
	_ = unsupported
}

func TestLoadNoMBC(t *testing.T) {
	rom := makeROM(0x8000, ROM, 0x00, 0x00)
	c, err := Load(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.(*noMBC); !ok {
		t.Fatalf("expected *noMBC, got %T", c)
	}
}

func TestMBC1BankRewrite(t *testing.T) {
	rom := makeROM(0x4000*128, MBC1, 0x06, 0x00)
	c, err := Load(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := c.(*mbc1)

	for _, tc := range []struct {
		write, want uint8
	}{
		{0x00, 1},
		{0x20, 1},
		{0x40, 1},
		{0x60, 1},
		{0x05, 5},
		{0x1F, 0x1F},
	} {
		m.Write(0x2000, tc.write)
		if m.primaryBank != tc.want {
			t.Errorf("write %#02x: primaryBank = %#02x, want %#02x", tc.write, m.primaryBank, tc.want)
		}
	}
}

func TestMBC1SmallRAMMirrors(t *testing.T) {
	rom := makeROM(0x4000*4, MBC1RAM, 0x01, 0x01) // 2 KiB RAM
	c, err := Load(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Write(0x0000, 0x0A) // enable RAM
	c.Write(0xA000, 0x42)
	if got := c.Read(0xA000); got != 0x42 {
		t.Fatalf("Read(0xA000) = %#02x, want 0x42", got)
	}
	// 2 KiB RAM mirrors across the full 8 KiB window.
	if got := c.Read(0xA800); got != 0x42 {
		t.Fatalf("mirrored Read(0xA800) = %#02x, want 0x42", got)
	}
}

func TestMBC2NibbleRAM(t *testing.T) {
	rom := makeROM(0x4000*4, MBC2, 0x01, 0x00)
	c, err := Load(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Write(0x0000, 0x0A)
	c.Write(0xA000, 0xFE)
	if got := c.Read(0xA000); got != 0xFE&0x0F|0xF0 {
		t.Fatalf("Read(0xA000) = %#02x, want upper nibble forced to 1s", got)
	}
}

func TestMBC3RTCLatch(t *testing.T) {
	rom := makeROM(0x4000*4, MBC3TIMERRAMBATT, 0x01, 0x02)
	c, err := Load(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := c.(*mbc3)
	m.rtc.seconds = 30
	c.Write(0x0000, 0x0A)
	c.Write(0x4000, 0x08) // select seconds register
	c.Write(0x6000, 0x00)
	c.Write(0x6000, 0x01) // latch sequence
	if got := c.Read(0xA000); got != 30 {
		t.Fatalf("latched seconds = %d, want 30", got)
	}
}

func TestMBC3SmallRAMMirrors(t *testing.T) {
	rom := makeROM(0x4000*4, MBC3RAM, 0x01, 0x01) // 2 KiB RAM
	c, err := Load(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Write(0x0000, 0x0A) // enable RAM
	c.Write(0xA000, 0x42)
	if got := c.Read(0xA000); got != 0x42 {
		t.Fatalf("Read(0xA000) = %#02x, want 0x42", got)
	}
	// 2 KiB RAM mirrors across the full 8 KiB window rather than
	// dividing by a zero bank count.
	if got := c.Read(0xA800); got != 0x42 {
		t.Fatalf("mirrored Read(0xA800) = %#02x, want 0x42", got)
	}
}

func TestMBC5SmallRAMMirrors(t *testing.T) {
	rom := makeROM(0x4000*4, MBC5RAM, 0x01, 0x01) // 2 KiB RAM
	c, err := Load(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Write(0x0000, 0x0A) // enable RAM
	c.Write(0xA000, 0x42)
	if got := c.Read(0xA000); got != 0x42 {
		t.Fatalf("Read(0xA000) = %#02x, want 0x42", got)
	}
	if got := c.Read(0xA800); got != 0x42 {
		t.Fatalf("mirrored Read(0xA800) = %#02x, want 0x42", got)
	}
}

func TestMBC5NoForcedNonzero(t *testing.T) {
	rom := makeROM(0x4000*4, MBC5, 0x01, 0x00)
	c, err := Load(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := c.(*mbc5)
	m.Write(0x2000, 0x00)
	if m.bank() != 0 {
		t.Fatalf("bank() = %d, want 0 (MBC5 has no forced-nonzero rule)", m.bank())
	}
}

func TestHeaderParseTooShort(t *testing.T) {
	if _, err := ParseHeader(make([]byte, 0x10)); err == nil {
		t.Fatal("expected an error for a truncated header")
	}
}
