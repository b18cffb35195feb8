// Package bigint implements an arbitrary-precision signed integer, suitable
// for embedding in resource-constrained programs that must transparently
// promote fixed-width arithmetic to unbounded precision when overflow would
// otherwise occur.
//
// Values are immutable: every operation returns a freshly allocated
// *BigInt and never mutates its operands, so aliased operands (Add(x, x))
// are always safe. Handles are shared and reference-counted (Retain /
// Release / RefCount) to mirror the embedding contract this package was
// distilled from; in this Go rendition the garbage collector is the actual
// reclaimer; the reference count exists so host code written against a
// manual-memory-management contract behaves identically when linked
// against this package (see DESIGN.md, Open Question OQ-1).
package bigint

import "sync/atomic"

// Sign identifies the sign of a BigInt. Zero is always SignNonNegative.
type Sign int8

const (
	SignNonNegative Sign = 0
	SignNegative    Sign = 1
)

// BigInt is a sign-magnitude arbitrary-precision integer. The zero value is
// not a valid BigInt; use Zero, FromInt64, FromString, etc.
type BigInt struct {
	sign Sign
	abs  nat
	refs int32
}

// newFrom allocates a fresh, exclusively-owned BigInt (refs == 1) wrapping
// the given magnitude and sign, normalizing so invariant 1 (count==0 iff
// value==0 iff sign==nonnegative) always holds.
func newFrom(sign Sign, abs nat) *BigInt {
	abs = abs.norm()
	if abs.isZero() {
		sign = SignNonNegative
	}
	return &BigInt{sign: sign, abs: abs, refs: 1}
}

// Zero returns a fresh BigInt equal to 0.
func Zero() *BigInt { return newFrom(SignNonNegative, nil) }

// One returns a fresh BigInt equal to 1.
func One() *BigInt { return newFrom(SignNonNegative, nat{1}) }

// Copy returns a structurally independent BigInt with the same value and a
// fresh reference count of 1 (component A's copy primitive).
func (x *BigInt) Copy() *BigInt {
	if x == nil {
		return nil
	}
	return newFrom(x.sign, nat(nil).set(x.abs))
}

// Retain increments x's reference count and returns x, for the "shared
// handle" lifecycle described in spec.md §3/§4.A.
func (x *BigInt) Retain() *BigInt {
	if x == nil {
		return nil
	}
	atomic.AddInt32(&x.refs, 1)
	return x
}

// Release decrements x's reference count. It is idempotent against a nil
// handle. Because Go's garbage collector owns actual storage reclamation,
// Release does not free x's backing array; it exists to let code written
// against a manual retain/release discipline observe the same counts.
func (x *BigInt) Release() {
	if x == nil {
		return
	}
	atomic.AddInt32(&x.refs, -1)
}

// RefCount reports the current reference count.
func (x *BigInt) RefCount() int32 {
	if x == nil {
		return 0
	}
	return atomic.LoadInt32(&x.refs)
}

// BitLength returns the number of bits needed to represent |x|, 0 for zero.
func (x *BigInt) BitLength() int {
	return x.abs.bitLen()
}

// LimbCount returns the number of meaningful limbs in x's magnitude.
func (x *BigInt) LimbCount() int {
	return len(x.abs)
}
