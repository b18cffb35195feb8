// This file implements the signed wrapper layer (component C): sign
// reconciliation over the magnitude core for add, subtract, multiply,
// divide, modulo, negate, abs, and pow. Every operation here is grounded on
// the teacher's signed-integer dispatch (math/big/int.go's Add/Sub/Mul),
// which reconciles signs exactly this way before calling into the unsigned
// layer; this package follows the same case analysis, adapted to
// reference-counted immutable handles instead of in-place mutation of a
// caller-supplied destination.
package bigint

// Add returns x+y, or nil if either operand is nil.
func Add(x, y *BigInt) *BigInt {
	if x == nil || y == nil {
		return nil
	}
	sign := x.sign
	var abs nat
	if x.sign == y.sign {
		// x+y == x+y ; (-x)+(-y) == -(x+y)
		abs = nat(nil).add(x.abs, y.abs)
	} else if x.abs.cmp(y.abs) >= 0 {
		// x + (-y) == x-y, (-x)+y == -(x-y), when |x|>=|y|
		abs = nat(nil).sub(x.abs, y.abs)
	} else {
		// when |x|<|y| the result takes y's sign
		sign = y.sign
		abs = nat(nil).sub(y.abs, x.abs)
	}
	return newFrom(sign, abs)
}

// Sub returns x-y, or nil if either operand is nil. Implemented as Add with
// y's sign flipped, per spec.md 4.C: no materialization of -y is needed
// beyond the logical sign flip performed here.
func Sub(x, y *BigInt) *BigInt {
	if x == nil || y == nil {
		return nil
	}
	negY := &BigInt{sign: flipSign(y.sign, y.abs), abs: y.abs}
	return Add(x, negY)
}

func flipSign(s Sign, abs nat) Sign {
	if abs.isZero() {
		return SignNonNegative
	}
	if s == SignNonNegative {
		return SignNegative
	}
	return SignNonNegative
}

// Mul returns x*y, or nil if either operand is nil.
func Mul(x, y *BigInt) *BigInt {
	if x == nil || y == nil {
		return nil
	}
	abs := nat(nil).mul(x.abs, y.abs)
	sign := SignNonNegative
	if !abs.isZero() && x.sign != y.sign {
		sign = SignNegative
	}
	return newFrom(sign, abs)
}

// Div returns the truncating (toward zero) quotient x/y, or nil if either
// operand is nil or y is zero.
func Div(x, y *BigInt) *BigInt {
	q, _ := DivMod(x, y)
	return q
}

// Mod returns the remainder of truncating division, whose sign follows x
// (a = (a/b)*b + (a%b)), or nil if either operand is nil or y is zero.
func Mod(x, y *BigInt) *BigInt {
	_, r := DivMod(x, y)
	return r
}

// DivMod computes truncating quotient and remainder together, the natural
// Go rendition of divide/mod sharing one magnitude division.
func DivMod(x, y *BigInt) (q, r *BigInt) {
	if x == nil || y == nil {
		return nil, nil
	}
	if y.abs.isZero() {
		warnDomainError("divide", "division by zero")
		return nil, nil
	}
	qa, ra := nat(nil).divLarge(x.abs, y.abs)
	qSign := SignNonNegative
	if !qa.isZero() && x.sign != y.sign {
		qSign = SignNegative
	}
	return newFrom(qSign, qa), newFrom(x.sign, ra)
}

// Negate returns -x, or nil if x is nil. Zero's sign stays nonnegative.
func Negate(x *BigInt) *BigInt {
	if x == nil {
		return nil
	}
	return newFrom(flipSign(x.sign, x.abs), nat(nil).set(x.abs))
}

// Abs returns |x|, or nil if x is nil.
func Abs(x *BigInt) *BigInt {
	if x == nil {
		return nil
	}
	return newFrom(SignNonNegative, nat(nil).set(x.abs))
}

// Pow returns base^exp via square-and-multiply; exp is a native unsigned
// 32-bit exponent. Sign is negative iff base is negative and exp is odd.
func Pow(base *BigInt, exp uint32) *BigInt {
	if base == nil {
		return nil
	}
	if exp == 0 {
		return One()
	}
	result := nat{1}
	b := base.abs
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = nat(nil).mul(result, b)
		}
		if e>>1 != 0 {
			b = nat(nil).mul(b, b)
		}
	}
	sign := SignNonNegative
	if base.sign == SignNegative && exp&1 == 1 {
		sign = SignNegative
	}
	return newFrom(sign, result)
}

// AddI32 returns x + int32(y), the int32 convenience variant spec.md §6
// names alongside Add. y is converted with FromInt32 and passed to Add, so a
// second BigInt is allocated for the operand.
func AddI32(x *BigInt, y int32) *BigInt {
	if x == nil {
		return nil
	}
	return Add(x, FromInt32(y))
}

// SubI32 returns x - int32(y).
func SubI32(x *BigInt, y int32) *BigInt {
	if x == nil {
		return nil
	}
	return Sub(x, FromInt32(y))
}

// MulI32 returns x * int32(y).
func MulI32(x *BigInt, y int32) *BigInt {
	if x == nil {
		return nil
	}
	return Mul(x, FromInt32(y))
}
