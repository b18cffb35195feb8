// This file implements the random layer (component I): a random integer of
// N bits and a random integer in a half-open range, both drawn from an
// injectable byte Source. Grounded on the teacher's own random method
// (math/big/nat.go's (z nat) random, which also draws from an injected
// *rand.Rand) — the default Source here wraps math/rand for the same
// reason the teacher does: spec.md explicitly does not imply a
// cryptographic entropy source, and no pack repo reaches for a CSPRNG.
package bigint

import "math/rand"

// Source is the environment's entropy capability (spec.md §6). It must
// produce unbiased, independent bytes; it makes no claim of being suitable
// for cryptographic use unless the caller supplies one that is.
type Source interface {
	// FillBytes fills buf with random bytes.
	FillBytes(buf []byte)
}

type mathRandSource struct{ r *rand.Rand }

func (s mathRandSource) FillBytes(buf []byte) { s.r.Read(buf) }

// defaultSource is the package's entropy source unless overridden with
// SetSource. It is NOT cryptographically secure, exactly as spec.md 4.I and
// §6 require documenting.
var defaultSource Source = mathRandSource{rand.New(rand.NewSource(1))}

// SetSource installs the Source used by subsequent Random/RandomRange
// calls. Passing nil restores the default math/rand-backed source.
func SetSource(s Source) {
	if s == nil {
		s = mathRandSource{rand.New(rand.NewSource(1))}
	}
	defaultSource = s
}

// maxSamplingRetries bounds RandomRange's rejection-sampling loop so a
// misbehaving Source cannot hang the caller (spec.md §7, "Sampling
// exhaustion").
const maxSamplingRetries = 1000

// Random returns a nonnegative BigInt of exactly `bits` bits of entropy:
// ceil(bits/W) limbs are filled from the Source and the top limb is masked
// to retain exactly bits%W high bits (or left whole when bits is a multiple
// of W), per spec.md 4.I.
func Random(bits uint) *BigInt {
	if bits == 0 {
		return Zero()
	}
	nlimbs := int((bits + _W - 1) / _W)
	abs := nat(nil).make(nlimbs)
	buf := make([]byte, nlimbs*(_W/8))
	defaultSource.FillBytes(buf)
	for i := 0; i < nlimbs; i++ {
		var w Word
		for b := 0; b < _W/8; b++ {
			w |= Word(buf[i*(_W/8)+b]) << (8 * uint(b))
		}
		abs[i] = w
	}
	if extra := bits % _W; extra != 0 {
		abs[nlimbs-1] &= (Word(1) << extra) - 1
	}
	return newFrom(SignNonNegative, abs.norm())
}

// RandomRange returns a uniformly distributed BigInt in the half-open range
// [lo, hi) via rejection sampling: sample bit_length(hi-lo) bits, resample
// if the draw lands outside the range, capped by a retry budget. Fails
// (returns nil) if lo >= hi; logs and fails if the retry budget is
// exhausted.
func RandomRange(lo, hi *BigInt) *BigInt {
	if lo == nil || hi == nil || GreaterEqual(lo, hi) {
		warnDomainError("random_range", "lo >= hi")
		return nil
	}
	span := Sub(hi, lo)
	bits := uint(span.BitLength())
	for attempt := 0; attempt < maxSamplingRetries; attempt++ {
		sample := Random(bits)
		if Less(sample, span) {
			return Add(lo, sample)
		}
	}
	warnSamplingExhausted(maxSamplingRetries)
	return nil
}
