package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false when
// the result would overflow int or either operand is negative.
// This is what count * elementSize calculations for arrays go through.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// Prealloc returns how many elements to reserve up front for a declared count
// that has not been backed by data yet. The result never exceeds limit, so a
// forged length cannot force a huge allocation before the bytes arrive.
func Prealloc(count uint64, limit int) int {
	if limit <= 0 {
		return 0
	}
	if count > uint64(limit) {
		return limit
	}
	return int(count)
}
