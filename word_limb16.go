//go:build limb16

package bigint

// Word is a single limb of a magnitude, built with 16-bit limbs. Use
// -tags limb16 to select this file over the default word_limb32.go; smaller
// limbs trade arithmetic throughput for a smaller per-value footprint on
// firmware-class targets.
type Word uint16

const wordBits = 16
