package bigint

// dword is an unsigned integer at least twice the width of a Word, used to
// hold double-width products, quotients, and carries without overflow.
// Word and wordBits are defined per limb-width build (word_limb32.go is the
// default build; word_limb16.go is selected with the limb16 build tag).
type dword = uint64

const (
	_W  = wordBits // limb width in bits: 16 or 32
	_B  = 1 << _W  // digit base, B = 2^W
	_M  = _B - 1   // digit mask
	_W2 = _W / 2   // half-word width in bits
	_B2 = 1 << _W2 // half-word base
	_M2 = _B2 - 1  // half-word mask
)
