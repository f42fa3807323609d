// Package types holds the small, dependency-free building blocks shared by
// the CPU, Bus, Cartridge, Interrupts and Timer packages: the architectural
// register representation and the handful of well-known bus addresses and
// bit masks every one of those packages needs to agree on.
package types

// Register holds an 8-bit value. The CPU has eight of them: A, B, C, D, E,
// F, H and L. F is special in that only its upper nibble is meaningful (see
// the cpu package's Flag type).
type Register = uint8

// RegisterPair aliases two Registers as a single 16-bit value, high byte
// first. BC, DE, HL and AF are all RegisterPairs over the CPU's underlying
// 8-bit Registers; reading or writing through the pair and through the
// halves observes the same storage.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the pair's value as (High<<8)|Low.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 splits value into High/Low and stores each half.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers is the Game Boy's architectural register file. The four
// RegisterPair fields are views over A/F, B/C, D/E and H/L respectively;
// they are wired up by whoever constructs a Registers value (see
// cpu.New) so that the pair and the halves always agree.
type Registers struct {
	A, F Register
	B, C Register
	D, E Register
	H, L Register

	AF, BC, DE, HL *RegisterPair
}
