// This file implements the overflow-checked native arithmetic helpers
// (component H): 32-bit checks via promotion to 64-bit, 64-bit add and
// subtract checks via the rearranged-inequality technique from spec.md 4.H,
// avoiding any intermediate signed overflow. The 64-bit multiply check is
// the exception: it forms the wrapped product and verifies it by dividing
// back. Each helper returns the result and true when the operation fits,
// or 0 and false when it overflows.
package bigint

import "math"

// AddOverflowI32 reports whether x+y fits in int32 and, if so, the sum.
func AddOverflowI32(x, y int32) (int32, bool) {
	s := int64(x) + int64(y)
	if s < math.MinInt32 || s > math.MaxInt32 {
		return 0, false
	}
	return int32(s), true
}

// SubOverflowI32 reports whether x-y fits in int32 and, if so, the difference.
func SubOverflowI32(x, y int32) (int32, bool) {
	d := int64(x) - int64(y)
	if d < math.MinInt32 || d > math.MaxInt32 {
		return 0, false
	}
	return int32(d), true
}

// MulOverflowI32 reports whether x*y fits in int32 and, if so, the product.
func MulOverflowI32(x, y int32) (int32, bool) {
	p := int64(x) * int64(y)
	if p < math.MinInt32 || p > math.MaxInt32 {
		return 0, false
	}
	return int32(p), true
}

// AddOverflowI64 reports whether x+y fits in int64 and, if so, the sum,
// detected via the rearranged inequality (no 128-bit promotion available).
func AddOverflowI64(x, y int64) (int64, bool) {
	if y > 0 && x > math.MaxInt64-y {
		return 0, false
	}
	if y < 0 && x < math.MinInt64-y {
		return 0, false
	}
	return x + y, true
}

// SubOverflowI64 reports whether x-y fits in int64 and, if so, the difference.
func SubOverflowI64(x, y int64) (int64, bool) {
	if y < 0 && x > math.MaxInt64+y {
		return 0, false
	}
	if y > 0 && x < math.MinInt64+y {
		return 0, false
	}
	return x - y, true
}

// MulOverflowI64 reports whether x*y fits in int64 and, if so, the product.
// It computes x*y with Go's wrapping signed multiply and detects overflow by
// dividing the wrapped product back by y; it does not pre-check the operands
// against MaxInt64/MinInt64.
func MulOverflowI64(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	p := x * y
	if p/y != x {
		return 0, false
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	return p, true
}
