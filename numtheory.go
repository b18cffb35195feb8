// This file implements the number-theoretic layer (component G): gcd, lcm,
// extended gcd, modular exponentiation, integer square root, factorial,
// primality, and prime succession — each a thin layer above the kernel, as
// spec.md §2 describes. Grounded on the teacher's nat-level primitives
// (cmp/sub/mul/divLarge) plus the classical algorithms spec.md 4.G names;
// the Euclidean/Bezout/Newton shapes follow the textbook presentations the
// teacher's own GCD-adjacent helpers assume elsewhere in math/big.
package bigint

// GCD returns the nonnegative greatest common divisor of a and b via the
// Euclidean algorithm over magnitudes. gcd(x, 0) == |x|.
func GCD(a, b *BigInt) *BigInt {
	if a == nil || b == nil {
		return nil
	}
	x, y := nat(nil).set(a.abs), nat(nil).set(b.abs)
	for !y.isZero() {
		_, r := nat(nil).divLarge(x, y)
		x, y = y, r
	}
	return newFrom(SignNonNegative, x)
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
func LCM(a, b *BigInt) *BigInt {
	if a == nil || b == nil {
		return nil
	}
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	g := GCD(a, b)
	prod := Mul(Abs(a), Abs(b))
	q, _ := DivMod(prod, g)
	return q
}

// ExtGCD returns (g, x, y) with a*x + b*y == g and g >= 0, via the
// classical iterative Bezout recurrence.
func ExtGCD(a, b *BigInt) (g, x, y *BigInt) {
	if a == nil || b == nil {
		return nil, nil, nil
	}
	oldR, r := a, b
	oldS, s := One(), Zero()
	oldT, t := Zero(), One()
	for !r.IsZero() {
		q := Div(oldR, r)
		oldR, r = r, Sub(oldR, Mul(q, r))
		oldS, s = s, Sub(oldS, Mul(q, s))
		oldT, t = t, Sub(oldT, Mul(q, t))
	}
	if oldR.IsNegative() {
		oldR = Negate(oldR)
		oldS = Negate(oldS)
		oldT = Negate(oldT)
	}
	return oldR, oldS, oldT
}

// ModPow returns base^exp mod m. Requires m != 0 (returns nil otherwise).
// m==1 yields 0; exp==0 yields 1 (before reducing base, per spec.md 4.G).
// Uses binary square-and-multiply, reducing the running product modulo m
// at every step so intermediate magnitudes stay bounded by m.
func ModPow(base, exp, m *BigInt) *BigInt {
	if base == nil || exp == nil || m == nil || m.IsZero() {
		warnDomainError("mod_pow", "modulus is zero")
		return nil
	}
	if Equal(Abs(m), One()) {
		return Zero()
	}
	if exp.IsZero() {
		return One()
	}
	if exp.IsNegative() {
		warnDomainError("mod_pow", "negative exponent")
		return nil
	}
	b := Mod(base, m)
	result := One()
	e := exp.Copy()
	two := FromInt32(2)
	for !e.IsZero() {
		if !Mod(e, two).IsZero() {
			result = Mod(Mul(result, b), m)
		}
		b = Mod(Mul(b, b), m)
		e = Div(e, two)
	}
	return result
}

// Isqrt returns the greatest integer r with r*r <= n. Requires n >= 0.
// Newton's method starting at x0 = max(1, n/2), iterating until the
// sequence stops decreasing, bounded to O(bitlen(n)) iterations so a
// degenerate input cannot loop indefinitely.
func Isqrt(n *BigInt) *BigInt {
	if n == nil || n.IsNegative() {
		warnDomainError("isqrt", "negative input")
		return nil
	}
	if n.IsZero() {
		return Zero()
	}
	two := FromInt32(2)
	x := Div(n, two)
	if x.IsZero() || x.IsNegative() {
		x = One()
	}
	limit := n.BitLength() + 2
	for i := 0; i < limit; i++ {
		next := Div(Add(x, Div(n, x)), two)
		if GreaterEqual(next, x) {
			break
		}
		x = next
	}
	return x
}

// Factorial returns n! for n in [0, 2^32). 0! == 1! == 1. Iterative
// multiplication 1*2*...*n, each factor a full BigInt so the full [0,2^32)
// domain (beyond int32's range) is handled uniformly.
func Factorial(n uint32) *BigInt {
	result := One()
	for i := uint32(2); i <= n; i++ {
		result = Mul(result, FromUint32(i))
	}
	return result
}

// IsPrime reports whether n is prime, via deterministic trial division up
// to Isqrt(n) — the reference semantics spec.md 4.G specifies. certainty is
// accepted and reserved (a Miller-Rabin implementation may honor it; this
// implementation documents and accepts the trial-division performance
// ceiling instead, per spec.md §9's explicit open-question resolution).
func IsPrime(n *BigInt, certainty int) bool {
	_ = certainty
	if n == nil || n.IsNegative() {
		return false
	}
	two := FromInt32(2)
	three := FromInt32(3)
	if Less(n, two) {
		return false
	}
	if Equal(n, two) || Equal(n, three) {
		return true
	}
	if Mod(n, two).IsZero() {
		return false
	}
	limit := Isqrt(n)
	for d := three; LessEqual(d, limit); d = AddI32(d, 2) {
		if Mod(n, d).IsZero() {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime >= n using the candidate scan
// spec.md 4.G describes: n<=2 -> 2, otherwise the smallest odd candidate
// >= n that passes IsPrime.
func NextPrime(n *BigInt) *BigInt {
	if n == nil {
		return nil
	}
	two := FromInt32(2)
	if LessEqual(n, two) {
		return two
	}
	candidate := n.Copy()
	if Mod(candidate, two).IsZero() {
		candidate = AddI32(candidate, 1)
	}
	for !IsPrime(candidate, 20) {
		candidate = AddI32(candidate, 2)
	}
	return candidate
}
