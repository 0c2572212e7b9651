package sequence

import "math/bits"

// Binomial returns C(n, k) using the multiplicative formula over
// min(k, n-k) factors. Out-of-domain pairs (k < 0 or k > n) yield 0
// without error.
//
// Each step computes C(n, i+1) = C(n, i)·(n-i)/(i+1) with a 128-bit
// product; the division is exact, so the only failure is a quotient that
// does not fit in 64 bits (ErrOverflow).
//
// Complexity: O(min(k, n-k)).
func Binomial(n, k int) (uint64, error) {
	if k < 0 || k > n {
		return 0, nil
	}
	if k > n-k {
		k = n - k
	}

	var (
		result uint64 = 1
		hi, lo uint64
		d      uint64
	)
	for i := 0; i < k; i++ {
		hi, lo = bits.Mul64(result, uint64(n-i))
		d = uint64(i + 1)
		if hi >= d {
			return 0, ErrOverflow
		}
		result, _ = bits.Div64(hi, lo, d)
	}

	return result, nil
}
