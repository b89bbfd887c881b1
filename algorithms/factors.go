package algorithms

import (
	"fmt"
	"slices"
	"sync"
)

// Factorizer computes the positive divisors of integers, memoizing results
// for its own lifetime. The cache is append-only and mutex-guarded, so a
// single Factorizer may be shared between goroutines; scope the object to
// the work that needs it rather than the whole process.
type Factorizer struct {
	mu    sync.Mutex
	cache map[int][]int
}

// NewFactorizer returns an empty Factorizer.
func NewFactorizer() *Factorizer {
	return &Factorizer{cache: make(map[int][]int)}
}

// Factors returns every positive divisor of n (including 1 and n) in
// ascending order. Candidate divisors are scanned up to √n; each hit
// contributes both the divisor and its cofactor. The returned slice is a
// copy, so callers may mutate it without poisoning the cache.
//
// Returns ErrNonPositive for n ≤ 0.
//
// Complexity: O(√n) on a cache miss, O(d(n)) on a hit (d = divisor count).
func (f *Factorizer) Factors(n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("factors of %d: %w", n, ErrNonPositive)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if cached, ok := f.cache[n]; ok {
		return slices.Clone(cached), nil
	}

	var factors []int
	for i := 1; i*i <= n; i++ {
		if n%i == 0 {
			factors = append(factors, i)
			if cofactor := n / i; cofactor != i {
				factors = append(factors, cofactor)
			}
		}
	}
	slices.Sort(factors)
	f.cache[n] = factors

	return slices.Clone(factors), nil
}
