//go:build !limb16

package bigint

// Word is a single limb of a magnitude. This file selects the default
// 32-bit limb width; build with -tags limb16 for 16-bit limbs on more
// constrained targets (see word_limb16.go).
type Word uint32

const wordBits = 32
