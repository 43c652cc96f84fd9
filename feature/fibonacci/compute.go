package fibonacci

import "math"

// Result is the Fibonacci response body.
type Result struct {
	N      uint64 `json:"n"`
	Result uint64 `json:"result"`
}

// Compute returns the n-th Fibonacci number under the standard recurrence,
// clamping at math.MaxUint64 instead of wrapping. fib(93) is the largest
// index that still fits in a uint64; every n >= 94 returns math.MaxUint64.
func Compute(n uint64) uint64 {
	if n == 0 {
		return 0
	}

	a, b := uint64(0), uint64(1)
	for i := uint64(1); i < n; i++ {
		a, b = b, satAdd(a, b)
	}
	return b
}

// satAdd adds two uint64 values, clamping at math.MaxUint64 on overflow.
func satAdd(x, y uint64) uint64 {
	if x > math.MaxUint64-y {
		return math.MaxUint64
	}
	return x + y
}
