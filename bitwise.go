// This file implements the bitwise layer (component E). Per spec.md 4.E,
// these operate on the magnitude only — this package keeps no two's
// complement view, unlike languages that sign-extend bitwise results over
// negative operands, so every result here is nonnegative. Shifts preserve
// sign since they are magnitude-scaling operations, not bit-pattern ones.
package bigint

// And returns the bitwise AND of |x| and |y| (always nonnegative), or nil
// if either operand is nil.
func And(x, y *BigInt) *BigInt {
	if x == nil || y == nil {
		return nil
	}
	return newFrom(SignNonNegative, nat(nil).and(x.abs, y.abs))
}

// Or returns the bitwise OR of |x| and |y|.
func Or(x, y *BigInt) *BigInt {
	if x == nil || y == nil {
		return nil
	}
	return newFrom(SignNonNegative, nat(nil).or(x.abs, y.abs))
}

// Xor returns the bitwise XOR of |x| and |y|.
func Xor(x, y *BigInt) *BigInt {
	if x == nil || y == nil {
		return nil
	}
	return newFrom(SignNonNegative, nat(nil).xor(x.abs, y.abs))
}

// Not returns the bitwise complement of |x| over len(x)+1 limbs (an
// always-nonnegative, always-finite pragmatic NOT — a documented deviation
// from mathematical -x-1, per spec.md 4.E).
func Not(x *BigInt) *BigInt {
	if x == nil {
		return nil
	}
	return newFrom(SignNonNegative, nat(nil).not(x.abs))
}

// ShiftLeft returns x << bits, sign preserved; equivalent to x * 2^bits.
func ShiftLeft(x *BigInt, bits uint) *BigInt {
	if x == nil {
		return nil
	}
	return newFrom(x.sign, nat(nil).shl(x.abs, bits))
}

// ShiftRight returns x >> bits, sign preserved; small values collapse to
// zero cleanly (sign reset to nonnegative by newFrom when the magnitude
// vanishes).
func ShiftRight(x *BigInt, bits uint) *BigInt {
	if x == nil {
		return nil
	}
	return newFrom(x.sign, nat(nil).shr(x.abs, bits))
}
