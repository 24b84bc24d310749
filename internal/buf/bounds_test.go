package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if got, ok := AddOverflowSafe(1, 2); !ok || got != 3 {
		t.Fatalf("AddOverflowSafe(1,2) = %d,%v", got, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow for MaxInt+1")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected overflow for MinInt-1")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if got, ok := MulOverflowSafe(1000, 8); !ok || got != 8000 {
		t.Fatalf("MulOverflowSafe(1000,8) = %d,%v", got, ok)
	}
	if got, ok := MulOverflowSafe(0, math.MaxInt); !ok || got != 0 {
		t.Fatalf("MulOverflowSafe(0,MaxInt) = %d,%v", got, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2+1, 2); ok {
		t.Fatalf("expected overflow")
	}
	if _, ok := MulOverflowSafe(-1, 4); ok {
		t.Fatalf("negative operand should be rejected")
	}
}

func TestPrealloc(t *testing.T) {
	if got := Prealloc(10, 100); got != 10 {
		t.Fatalf("Prealloc(10,100) = %d", got)
	}
	if got := Prealloc(math.MaxUint32, 4096); got != 4096 {
		t.Fatalf("Prealloc(MaxUint32,4096) = %d", got)
	}
	if got := Prealloc(5, 0); got != 0 {
		t.Fatalf("Prealloc with zero limit = %d", got)
	}
}
