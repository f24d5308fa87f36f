// Package workload generates synthetic element sets for exercising an
// Invertible Bloom Filter end to end: random multisets and random
// symmetric-difference pairs of a chosen size, for use by benchmarks and
// the CLI demo. It is kept separate from the ibf package because it only
// produces inputs for a Filter, never reads or mutates one.
package workload

import "math/rand"

// Distinct draws n distinct uint64 elements from r.
func Distinct(r *rand.Rand, n int) []uint64 {
	seen := make(map[uint64]struct{}, n)
	set := make([]uint64, 0, n)
	for len(set) < n {
		v := r.Uint64()
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		set = append(set, v)
	}
	return set
}

// SymmetricDifferencePair builds two sets that share total-diff elements;
// A additionally holds diff/2 elements of its own and B the other
// diff-diff/2, so that |A△B| == diff. diff is capped at total.
func SymmetricDifferencePair(r *rand.Rand, total, diff int) (a, b []uint64) {
	if diff > total {
		diff = total
	}
	shared := total - diff
	common := Distinct(r, shared)

	onlyA := Distinct(r, diff/2)
	onlyB := Distinct(r, diff-diff/2)

	a = append(append([]uint64{}, common...), onlyA...)
	b = append(append([]uint64{}, common...), onlyB...)
	return a, b
}
