package bigint

import "testing"

func TestBitwiseNonNegative(t *testing.T) {
	a := FromInt64(-12)
	b := FromInt64(10)
	ops := []*BigInt{And(a, b), Or(a, b), Xor(a, b), Not(a)}
	for _, r := range ops {
		if r.IsNegative() {
			t.Errorf("bitwise result must be nonnegative, got %s", r)
		}
	}
}

func TestAndOrXorOnMagnitudes(t *testing.T) {
	a := FromInt64(0b1100)
	b := FromInt64(0b1010)
	if !Equal(And(a, b), FromInt64(0b1000)) {
		t.Errorf("and mismatch")
	}
	if !Equal(Or(a, b), FromInt64(0b1110)) {
		t.Errorf("or mismatch")
	}
	if !Equal(Xor(a, b), FromInt64(0b0110)) {
		t.Errorf("xor mismatch")
	}
}

func TestShiftLeftIsMultiplyByPowerOfTwo(t *testing.T) {
	x := FromInt64(12345)
	for k := uint(0); k < 40; k += 7 {
		lhs := ShiftLeft(x, k)
		rhs := Mul(x, Pow(FromInt32(2), uint32(k)))
		if !Equal(lhs, rhs) {
			t.Errorf("shift_left(x,%d) != x*2^%d: %s != %s", k, k, lhs, rhs)
		}
	}
}

func TestShiftRightUndoesShiftLeft(t *testing.T) {
	x := FromInt64(987654321)
	for k := uint(0); k < 40; k += 5 {
		if !Equal(ShiftRight(ShiftLeft(x, k), k), x) {
			t.Errorf("shift_right(shift_left(x,%d),%d) != x", k, k)
		}
	}
}

func TestShiftRightCollapsesToZero(t *testing.T) {
	if !ShiftRight(FromInt64(5), 10).IsZero() {
		t.Errorf("small value right-shifted must collapse to 0")
	}
}

func TestCompareTotalOrder(t *testing.T) {
	vals := []*BigInt{FromInt64(-100), FromInt64(-1), Zero(), One(), FromInt64(100)}
	for i := 0; i < len(vals); i++ {
		for j := 0; j < len(vals); j++ {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			got := Compare(vals[i], vals[j])
			if sign(got) != want {
				t.Errorf("compare(%s,%s) = %d, want sign %d", vals[i], vals[j], got, want)
			}
		}
	}
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

func TestRelationalOperators(t *testing.T) {
	a, b := FromInt64(3), FromInt64(5)
	if !Less(a, b) || Greater(a, b) || Equal(a, b) {
		t.Errorf("relational operators inconsistent for 3,5")
	}
	if !LessEqual(a, a) || !GreaterEqual(a, a) || !Equal(a, a) {
		t.Errorf("reflexive relational operators failed")
	}
}
