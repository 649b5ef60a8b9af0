package model

import (
	"iter"
	"slices"
)

// Combinations yields every strictly increasing k-subset of [0, n) in lexicographic order.
// Each yielded slice is a fresh copy, and the sequence can be ranged over any number of times.
//
// Example:
//
//	for triple := range Combinations(4, 3) {
//		// [0 1 2], [0 1 3], [0 2 3], [1 2 3]
//	}
func Combinations(n, k uint64) iter.Seq[[]uint64] {
	return func(yield func([]uint64) bool) {
		if k > n {
			return
		}

		combination := make([]uint64, k)
		for i := range combination {
			combination[i] = uint64(i)
		}

		for {
			if !yield(slices.Clone(combination)) {
				return
			}

			// Rightmost position that has not reached its maximum value n-k+i
			i := int(k) - 1
			for i >= 0 && combination[i] == n-k+uint64(i) {
				i--
			}
			if i < 0 {
				return
			}

			combination[i]++
			for j := i + 1; j < int(k); j++ {
				combination[j] = combination[j-1] + 1
			}
		}
	}
}

// Binomial returns C(n, k)
func Binomial(n, k uint64) uint64 {
	if k > n {
		return 0
	}
	k = min(k, n-k)

	var result uint64 = 1
	for i := range k {
		result = result * (n - i) / (i + 1)
	}
	return result
}
