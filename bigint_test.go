package bigint

import "testing"

func TestZeroOneCanonicalForm(t *testing.T) {
	z := Zero()
	if !z.IsZero() || z.sign != SignNonNegative || z.LimbCount() != 0 {
		t.Fatalf("Zero() not canonical: %+v", z)
	}
	one := One()
	if one.LimbCount() != 1 || !one.IsPositive() {
		t.Fatalf("One() not canonical: %+v", one)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	x := FromInt64(12345)
	y := x.Copy()
	if !Equal(x, y) {
		t.Fatalf("copy changed value: x=%s y=%s", x, y)
	}
	y.abs[0]++ // mutate the copy's backing array directly
	if Equal(x, y) {
		t.Fatalf("mutating copy affected original: x=%s y=%s", x, y)
	}
}

func TestRetainReleaseRefCount(t *testing.T) {
	x := FromInt64(7)
	if x.RefCount() != 1 {
		t.Fatalf("fresh value refcount = %d, want 1", x.RefCount())
	}
	x.Retain()
	x.Retain()
	if x.RefCount() != 3 {
		t.Fatalf("after two retains refcount = %d, want 3", x.RefCount())
	}
	x.Release()
	x.Release()
	if x.RefCount() != 1 {
		t.Fatalf("after two releases refcount = %d, want 1", x.RefCount())
	}
	x.Release()
	if x.RefCount() != 0 {
		t.Fatalf("after final release refcount = %d, want 0", x.RefCount())
	}
}

func TestReleaseNilIsNoOp(t *testing.T) {
	var x *BigInt
	x.Release()
	x.Retain()
	if x.RefCount() != 0 {
		t.Fatalf("nil handle refcount = %d, want 0", x.RefCount())
	}
}

func TestNegateAbsSignLaws(t *testing.T) {
	vals := []*BigInt{Zero(), One(), FromInt64(-9), FromInt64(9)}
	for _, x := range vals {
		if !Equal(Negate(Negate(x)), x) {
			t.Errorf("negate(negate(%s)) != %s", x, x)
		}
		if Abs(x).IsNegative() {
			t.Errorf("abs(%s) is negative", x)
		}
		if x.IsNegative() != Less(x, Zero()) {
			t.Errorf("is_negative(%s) inconsistent with compare", x)
		}
	}
	if !Negate(Zero()).IsPositive() && Negate(Zero()).IsNegative() {
		t.Errorf("negate(0) must stay nonnegative")
	}
}

func TestAdditionLaws(t *testing.T) {
	a := FromInt64(123456789)
	b := FromInt64(-987654321)
	c := FromInt64(42)
	if !Equal(Add(a, b), Add(b, a)) {
		t.Errorf("addition not commutative")
	}
	if !Equal(Add(Add(a, b), c), Add(a, Add(b, c))) {
		t.Errorf("addition not associative")
	}
	if !Equal(Add(a, Zero()), a) {
		t.Errorf("0 is not an additive identity")
	}
	if !Add(a, Negate(a)).IsZero() {
		t.Errorf("a + (-a) != 0")
	}
}

func TestMultiplicationLaws(t *testing.T) {
	a := FromInt64(37)
	b := FromInt64(-11)
	c := FromInt64(5)
	if !Equal(Mul(a, b), Mul(b, a)) {
		t.Errorf("multiplication not commutative")
	}
	if !Equal(Mul(Mul(a, b), c), Mul(a, Mul(b, c))) {
		t.Errorf("multiplication not associative")
	}
	if !Equal(Mul(a, Add(b, c)), Add(Mul(a, b), Mul(a, c))) {
		t.Errorf("multiplication does not distribute over addition")
	}
	if !Equal(Mul(a, One()), a) {
		t.Errorf("1 is not a multiplicative identity")
	}
	if !Mul(a, Zero()).IsZero() {
		t.Errorf("0 is not an annihilator")
	}
}

func TestDivModInvariant(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{17, 5}, {-17, 5}, {17, -5}, {-17, -5}, {0, 7}, {100, 7},
	}
	for _, c := range cases {
		a, b := FromInt64(c.a), FromInt64(c.b)
		q, r := DivMod(a, b)
		if !Equal(Add(Mul(q, b), r), a) {
			t.Errorf("%d = q*b+r invariant broken: q=%s r=%s", c.a, q, r)
		}
		if GreaterEqual(Abs(r), Abs(b)) {
			t.Errorf("|r| >= |b| for a=%d b=%d: r=%s", c.a, c.b, r)
		}
		if !r.IsZero() && r.IsNegative() != a.IsNegative() {
			t.Errorf("sign(r) does not follow sign(a) for a=%d b=%d: r=%s", c.a, c.b, r)
		}
	}
}

func TestDivByZeroIsNil(t *testing.T) {
	if Div(FromInt64(1), Zero()) != nil {
		t.Fatalf("division by zero must return nil")
	}
	if Mod(FromInt64(1), Zero()) != nil {
		t.Fatalf("modulo by zero must return nil")
	}
}

func TestNilPropagation(t *testing.T) {
	if Add(nil, One()) != nil || Add(One(), nil) != nil {
		t.Fatalf("Add with a nil operand must return nil")
	}
	if Mul(nil, nil) != nil {
		t.Fatalf("Mul(nil, nil) must return nil")
	}
}

func TestBigMultiplicationScenario(t *testing.T) {
	a, _ := FromString("999999999999999999", 10)
	b, _ := FromString("888888888888888888", 10)
	got := Mul(a, b).String()
	want := "888888888888888887111111111111111112"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestBigDivisionScenario(t *testing.T) {
	a, _ := FromString("999999999999999999888888888888888888", 10)
	b, _ := FromString("999999999999999999", 10)
	got := Div(a, b).String()
	want := "1000000000000000000"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestBigModScenario(t *testing.T) {
	a, _ := FromString("999999999999999999999999999", 10)
	got := Mod(a, FromInt32(123456789)).String()
	want := "93951369"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestAddI32SubI32MulI32(t *testing.T) {
	x := FromInt64(100)
	if !Equal(AddI32(x, 23), FromInt64(123)) {
		t.Errorf("AddI32 mismatch")
	}
	if !Equal(SubI32(x, 23), FromInt64(77)) {
		t.Errorf("SubI32 mismatch")
	}
	if !Equal(MulI32(x, 3), FromInt64(300)) {
		t.Errorf("MulI32 mismatch")
	}
}

func TestPow(t *testing.T) {
	if !Equal(Pow(FromInt64(2), 10), FromInt64(1024)) {
		t.Errorf("2^10 != 1024")
	}
	if !Equal(Pow(FromInt64(-2), 3), FromInt64(-8)) {
		t.Errorf("(-2)^3 != -8")
	}
	if !Equal(Pow(FromInt64(-2), 2), FromInt64(4)) {
		t.Errorf("(-2)^2 != 4")
	}
	if !Equal(Pow(FromInt64(5), 0), One()) {
		t.Errorf("x^0 != 1")
	}
}

func TestBitLengthAndLimbCount(t *testing.T) {
	x := FromInt64(255)
	if x.BitLength() != 8 {
		t.Errorf("bitlen(255) = %d, want 8", x.BitLength())
	}
	if x.LimbCount() != 1 {
		t.Errorf("limbcount(255) = %d, want 1", x.LimbCount())
	}
	if Zero().BitLength() != 0 {
		t.Errorf("bitlen(0) != 0")
	}
}
