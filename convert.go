// This file implements the conversion layer (component D): to/from
// fixed-width native integers, to double, and parse/format in bases 2..36.
// The string algorithms are grounded on the teacher's decimal/Horner shape
// (math/big/nat.go's setUint64/scanning idiom) and on
// Go-zh-go.old/src/math/big/intconv.go's digit-set handling for Format.
package bigint

import (
	"fmt"
	"math"
	"strings"
)

const lowercaseDigits = "0123456789abcdefghijklmnopqrstuvwxyz"
const uppercaseDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// FromInt32 returns a BigInt equal to x. INT32_MIN is handled by widening to
// int64 before negating, so the minimum value is never negated in its own
// width (spec.md §4.D).
func FromInt32(x int32) *BigInt { return FromInt64(int64(x)) }

// FromInt64 returns a BigInt equal to x. A negative x's magnitude is
// computed as uint64(-(x+1)) + 1 (for INT64_MIN, the identity
// |MIN| == MAX+1) so the minimum value is never negated directly.
func FromInt64(x int64) *BigInt {
	if x >= 0 {
		return newFrom(SignNonNegative, nat(nil).setUint64(uint64(x)))
	}
	mag := uint64(-(x + 1)) + 1 // == |x|, computed without negating x itself
	return newFrom(SignNegative, nat(nil).setUint64(mag))
}

// FromUint32 returns a BigInt equal to x.
func FromUint32(x uint32) *BigInt { return newFrom(SignNonNegative, nat(nil).setUint64(uint64(x))) }

// FromUint64 returns a BigInt equal to x.
func FromUint64(x uint64) *BigInt { return newFrom(SignNonNegative, nat(nil).setUint64(x)) }

func (x *BigInt) toUint64() (uint64, bool) {
	switch len(x.abs) {
	case 0:
		return 0, true
	case 1:
		return uint64(x.abs[0]), true
	case 2:
		if _W == 32 {
			return uint64(x.abs[0]) | uint64(x.abs[1])<<32, true
		}
	}
	// more limbs than fit in 64 bits at this word width
	if _W == 16 && len(x.abs) <= 4 {
		var v uint64
		for i := len(x.abs) - 1; i >= 0; i-- {
			v = v<<_W | uint64(x.abs[i])
		}
		return v, true
	}
	return 0, false
}

// ToInt32 reports whether x is representable as an int32 and, if so, its
// value. The negative bound is asymmetric from the positive one exactly as
// spec.md §4.D requires (|MIN| admissible, MAX+1 is not).
func (x *BigInt) ToInt32() (int32, bool) {
	v, ok := x.ToInt64()
	if !ok || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

// ToInt64 reports whether x is representable as an int64 and, if so, its value.
func (x *BigInt) ToInt64() (int64, bool) {
	mag, ok := x.toUint64()
	if !ok {
		return 0, false
	}
	if x.sign == SignNonNegative {
		if mag > math.MaxInt64 {
			return 0, false
		}
		return int64(mag), true
	}
	if mag > math.MaxInt64+1 {
		return 0, false
	}
	return -int64(mag), true
}

// ToUint32 reports whether x is representable as a uint32.
func (x *BigInt) ToUint32() (uint32, bool) {
	v, ok := x.ToUint64()
	if !ok || v > math.MaxUint32 {
		return 0, false
	}
	return uint32(v), true
}

// ToUint64 reports whether x is representable as a uint64 (x must be
// nonnegative and fit in 64 bits).
func (x *BigInt) ToUint64() (uint64, bool) {
	if x.sign == SignNegative && !x.abs.isZero() {
		return 0, false
	}
	return x.toUint64()
}

// ToFloat64 evaluates x via Horner's method across its limbs (base B),
// applying sign; values too large for a float64 produce +/-Inf.
func (x *BigInt) ToFloat64() float64 {
	var v float64
	for i := len(x.abs) - 1; i >= 0; i-- {
		v = v*float64(uint64(1)<<_W) + float64(x.abs[i])
	}
	if x.sign == SignNegative {
		v = -v
	}
	return v
}

func digitValue(c byte, base int) (int, bool) {
	var v int
	switch {
	case '0' <= c && c <= '9':
		v = int(c - '0')
	case 'a' <= c && c <= 'z':
		v = int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}

// FromString parses s in the given base (2..36), per spec.md §4.D: skip
// leading whitespace, an optional sign, leading zeros, then Horner-reduce
// valid digits until the first invalid character. Reports false on an
// unsupported base, empty input, or no valid digits found.
func FromString(s string, base int) (*BigInt, bool) {
	if base < 2 || base > 36 {
		return nil, false
	}
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	sawZero := false
	for i < len(s) && s[i] == '0' {
		sawZero = true
		i++
	}
	abs := nat(nil)
	baseW := Word(base)
	any := false
	for ; i < len(s); i++ {
		d, ok := digitValue(s[i], base)
		if !ok {
			break
		}
		any = true
		abs = nat(nil).mul(abs, nat{baseW})
		abs = nat(nil).add(abs, nat{Word(d)})
	}
	if !any && !sawZero {
		return nil, false
	}
	sign := SignNonNegative
	if neg && !abs.isZero() {
		sign = SignNegative
	}
	return newFrom(sign, abs), true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// ToString formats x in the given base (2..36) using repeated
// divide-by-base, emitting digits then reversing and prepending a minus
// sign, exactly as spec.md §4.D describes. Zero always yields "0".
func (x *BigInt) ToString(base int) (string, bool) {
	return x.toStringDigits(base, lowercaseDigits)
}

func (x *BigInt) toStringDigits(base int, digits string) (string, bool) {
	if base < 2 || base > 36 {
		return "", false
	}
	if x.abs.isZero() {
		return "0", true
	}
	var buf []byte
	rem := nat(nil).set(x.abs)
	baseW := nat{Word(base)}
	for !rem.isZero() {
		q, r := nat(nil).divLarge(rem, baseW)
		d := byte(0)
		if len(r) > 0 {
			d = byte(r[0])
		}
		buf = append(buf, digits[d])
		rem = q
	}
	if x.sign == SignNegative {
		buf = append(buf, '-')
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), true
}

// String formats x in base 10, satisfying fmt.Stringer.
func (x *BigInt) String() string {
	if x == nil {
		return "<nil>"
	}
	s, _ := x.ToString(10)
	return s
}

// GoString formats x as a Go-syntax string, e.g. bigint.MustFromString("-42", 10).
func (x *BigInt) GoString() string {
	if x == nil {
		return "(*bigint.BigInt)(nil)"
	}
	var b strings.Builder
	b.WriteString("bigint.MustFromString(\"")
	b.WriteString(x.String())
	b.WriteString("\", 10)")
	return b.String()
}

// Format implements fmt.Formatter, giving *BigInt the same %b %o %d %x %X %v
// verb support Go-zh-go.old/src/math/big/intconv.go gives math/big.Int: %b
// base 2, %o base 8, %d/%v base 10, %x/%X base 16 (lower/upper digits).
func (x *BigInt) Format(f fmt.State, verb rune) {
	if x == nil {
		fmt.Fprint(f, "<nil>")
		return
	}
	var s string
	switch verb {
	case 'b':
		s, _ = x.toStringDigits(2, lowercaseDigits)
	case 'o':
		s, _ = x.toStringDigits(8, lowercaseDigits)
	case 'x':
		s, _ = x.toStringDigits(16, lowercaseDigits)
	case 'X':
		s, _ = x.toStringDigits(16, uppercaseDigits)
	case 'd', 'v':
		s, _ = x.toStringDigits(10, lowercaseDigits)
	default:
		fmt.Fprintf(f, "%%!%c(bigint.BigInt=%s)", verb, x.String())
		return
	}
	fmt.Fprint(f, s)
}

// MustFromString is FromString for callers with a literal they know is
// valid (table-driven tests, constants derived from other MustFromString
// calls); it panics on a parse failure instead of returning ok=false.
func MustFromString(s string, base int) *BigInt {
	v, ok := FromString(s, base)
	if !ok {
		panic("bigint: invalid literal " + s)
	}
	return v
}
