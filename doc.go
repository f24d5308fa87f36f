// Package ibf implements an Invertible Bloom Filter: a fixed-size,
// XOR-based sketch of a multiset of uint64 elements that supports
// subtracting two sketches to obtain their symmetric difference and
// peeling that difference back into the actual differing elements.
//
// The intended use is set reconciliation between two parties whose
// symmetric difference is bounded by a known size d: space and time
// scale with d rather than with the size of either party's full set.
package ibf
