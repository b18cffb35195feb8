// This file implements the sign-magnitude core (component B): the unsigned
// multi-precision magnitude type and the elementary algorithms — compare,
// add, subtract, multiply, divide/remainder, and shifts — that every signed,
// bitwise, conversion, and number-theoretic operation in this package is
// built from. Adapted from the teacher's unsigned-integer layer
// (math/big/nat.go): same little-endian []Word representation, same
// norm/cmp/add/sub shape, stripped of the teacher's constant-time and
// Karatsuba machinery (this spec asks for neither) and extended with the
// spec's binary shift-subtract division.
package bigint

// nat is an unsigned multi-precision integer: a little-endian slice of
// limbs, x = x[0] + x[1]*B + x[2]*B^2 + ... A normalized nat has no
// trailing zero limb; the normalized representation of 0 is a nil or
// empty slice.
type nat []Word

var (
	natZero = nat(nil)
	natOne  = nat{1}
)

// norm strips trailing zero limbs.
func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

// make returns a nat of length n, reusing z's backing array when it has
// enough capacity and otherwise growing through the installed Allocator
// (component A), so a host that calls SetAllocator actually governs limb
// storage rather than merely observing it.
func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n]
	}
	const e = 4 // a little slack so repeated growth doesn't re-allocate every limb
	return nat(defaultAllocator.Realloc([]Word(z), n+e))[:n]
}

// set copies x into a (possibly reused) destination.
func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z nat) setWord(x Word) nat {
	if x == 0 {
		return z.make(0)
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z nat) setUint64(x uint64) nat {
	if x>>_W>>_W != 0 {
		// more than two limbs are needed only with 16-bit limbs
		n := 0
		for t := x; t != 0; t >>= _W {
			n++
		}
		z = z.make(n)
		for i := range z {
			z[i] = Word(x)
			x >>= _W
		}
		return z
	}
	w0 := Word(x)
	w1 := Word(x >> _W)
	switch {
	case w1 != 0:
		z = z.make(2)
		z[0], z[1] = w0, w1
	case w0 != 0:
		z = z.make(1)
		z[0] = w0
	default:
		z = z.make(0)
	}
	return z
}

// cmp returns -1, 0, +1 as x <, ==, > y, comparing lengths first and then
// limbs from most to least significant (compare_magnitude).
func (x nat) cmp(y nat) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (x nat) isZero() bool {
	return len(x) == 0
}

// add returns x+y (add_magnitude).
func (z nat) add(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		x, y = y, x
		m, n = n, m
	}
	if m == 0 {
		return z.make(0)
	}
	z = z.make(m + 1)
	c := addVV(z[:n], x[:n], y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.norm()
}

// sub returns x-y (sub_magnitude). Precondition: x >= y.
func (z nat) sub(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		panic("bigint: invalid subtraction of larger magnitude")
	}
	if m == 0 {
		return z.make(0)
	}
	z = z.make(m)
	c := subVV(z[:n], x[:n], y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("bigint: invalid subtraction of larger magnitude")
	}
	return z.norm()
}

// mul returns x*y via the schoolbook algorithm (mul_magnitude).
func (z nat) mul(x, y nat) nat {
	m, n := len(x), len(y)
	switch {
	case m == 0 || n == 0:
		return z.make(0)
	case m < n:
		x, y = y, x
		m, n = n, m
	}
	zz := nat(nil).make(m + n)
	for i := range zz {
		zz[i] = 0
	}
	for i := 0; i < n; i++ {
		if yi := y[i]; yi != 0 {
			zz[m+i] = addMulVVW(zz[i:m+i], x, yi)
		}
	}
	return zz.norm()
}

// divLarge implements divrem_magnitude via binary shift-subtract, exactly as
// specified: walk the dividend's bits from the top, shifting them one at a
// time into a running remainder and subtracting the divisor whenever it
// fits. O(bitlen(a) * limbCount(a)) but simple to audit and correct by
// construction; callers needing Knuth Algorithm D throughput can swap this
// routine without touching any caller.
func (z nat) divLarge(x, y nat) (q, r nat) {
	if y.isZero() {
		panic("bigint: division by zero magnitude")
	}
	if x.cmp(y) < 0 {
		return nil, nat(nil).set(x)
	}
	nb := x.bitLen()
	qq := nat(nil).make((nb+_W-1)/_W + 1)
	for i := range qq {
		qq[i] = 0
	}
	var rem nat
	for i := nb - 1; i >= 0; i-- {
		rem = rem.shl(rem, 1)
		if x.bit(uint(i)) != 0 {
			rem = rem.setBit(rem, 0, 1)
		}
		if rem.cmp(y) >= 0 {
			rem = rem.sub(rem, y)
			qq = qq.setBit(qq, uint(i), 1)
		}
	}
	return qq.norm(), rem.norm()
}

// bitLen returns the number of bits in x's magnitude (0 for zero).
func (x nat) bitLen() int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*_W + bitLen(x[len(x)-1])
}

// bit returns bit i of x (0 or 1), zero-extended past the end.
func (x nat) bit(i uint) Word {
	j := i / _W
	if j >= uint(len(x)) {
		return 0
	}
	return (x[j] >> (i % _W)) & 1
}

// setBit returns a copy of x with bit i set to b (0 or 1).
func (z nat) setBit(x nat, i uint, b Word) nat {
	j := i / _W
	n := uint(len(x))
	if j >= n {
		if b == 0 {
			return z.set(x)
		}
		n = j + 1
	}
	z = z.make(int(n))
	copy(z, x)
	for k := len(x); k < int(n); k++ {
		z[k] = 0
	}
	mask := Word(1) << (i % _W)
	if b != 0 {
		z[j] |= mask
	} else {
		z[j] &^= mask
	}
	return z.norm()
}

// shl returns x << s (shift_left_magnitude, the magnitude-only part; the
// signed wrapper and bitwise layer call this directly).
func (z nat) shl(x nat, s uint) nat {
	if x.isZero() {
		return z.make(0)
	}
	k := int(s / _W)
	r := uint(s % _W)
	m := len(x)
	n := m + k
	if r > 0 {
		n++
	}
	z = z.make(n)
	for i := 0; i < k; i++ {
		z[i] = 0
	}
	if r == 0 {
		copy(z[k:m+k], x)
	} else {
		c := shlVU(z[k:m+k], x, r)
		if m+k < n {
			z[m+k] = c
		}
	}
	return z.norm()
}

// shr returns x >> s (shift_right_magnitude).
func (z nat) shr(x nat, s uint) nat {
	k := int(s / _W)
	r := uint(s % _W)
	if k >= len(x) {
		return z.make(0)
	}
	m := len(x) - k
	z = z.make(m)
	if r == 0 {
		copy(z, x[k:])
	} else {
		shrVU(z, x[k:], r)
	}
	return z.norm()
}

// and, or, xor operate limb-wise treating the shorter operand as
// zero-extended (component E's magnitude primitives).
func (z nat) and(x, y nat) nat {
	m, n := len(x), len(y)
	if m > n {
		m = n
	}
	z = z.make(m)
	for i := 0; i < m; i++ {
		z[i] = x[i] & y[i]
	}
	return z.norm()
}

func (z nat) or(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		x, y = y, x
		m, n = n, m
	}
	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] | y[i]
	}
	copy(z[n:m], x[n:m])
	return z.norm()
}

func (z nat) xor(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		x, y = y, x
		m, n = n, m
	}
	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] ^ y[i]
	}
	copy(z[n:m], x[n:m])
	return z.norm()
}

// not returns the bitwise complement of x over len(x)+1 limbs, the extra
// all-ones limb appended exactly as spec.md 4.E mandates (a pragmatic,
// always-nonnegative, always-finite NOT rather than mathematical -x-1).
func (z nat) not(x nat) nat {
	z = z.make(len(x) + 1)
	for i, xi := range x {
		z[i] = _M &^ xi
	}
	z[len(x)] = _M
	return z.norm()
}
