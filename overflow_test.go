package bigint

import (
	"math"
	"testing"
)

func TestOverflowScenarios(t *testing.T) {
	if _, ok := AddOverflowI32(math.MaxInt32, 1); ok {
		t.Fatalf("AddOverflowI32(MAX,1) must overflow")
	}
	if _, ok := MulOverflowI64(math.MaxInt64, 2); ok {
		t.Fatalf("MulOverflowI64(MAX,2) must overflow")
	}
	if got, ok := AddOverflowI32(100, 200); !ok || got != 300 {
		t.Fatalf("AddOverflowI32(100,200) = (%d,%v), want (300,true)", got, ok)
	}
}

func TestOverflowI32Boundaries(t *testing.T) {
	if _, ok := SubOverflowI32(math.MinInt32, 1); ok {
		t.Fatalf("MinInt32-1 must overflow")
	}
	if _, ok := MulOverflowI32(math.MaxInt32, 2); ok {
		t.Fatalf("MaxInt32*2 must overflow")
	}
	if got, ok := SubOverflowI32(5, 10); !ok || got != -5 {
		t.Fatalf("5-10 = (%d,%v), want (-5,true)", got, ok)
	}
}

func TestOverflowI64Boundaries(t *testing.T) {
	if _, ok := AddOverflowI64(math.MaxInt64, 1); ok {
		t.Fatalf("MaxInt64+1 must overflow")
	}
	if _, ok := AddOverflowI64(math.MinInt64, -1); ok {
		t.Fatalf("MinInt64-1 must overflow")
	}
	if _, ok := SubOverflowI64(math.MinInt64, 1); ok {
		t.Fatalf("MinInt64-1 (via Sub) must overflow")
	}
	if _, ok := MulOverflowI64(math.MinInt64, -1); ok {
		t.Fatalf("MinInt64*-1 must overflow")
	}
	if got, ok := MulOverflowI64(0, math.MinInt64); !ok || got != 0 {
		t.Fatalf("0*MinInt64 must not overflow: (%d,%v)", got, ok)
	}
	if got, ok := AddOverflowI64(-1, -1); !ok || got != -2 {
		t.Fatalf("-1+-1 = (%d,%v), want (-2,true)", got, ok)
	}
}
