package ibf

// DecodeResult holds the two element lists a peeling decode produces, in
// place of the source's pair of output parameters: InB is the set of
// elements present in the filter before subtraction that are missing from
// whatever was subtracted away (routed from cells with positive count),
// and InA is elements present in whatever was subtracted that are missing
// from the original (negative count). On a Filter that was only ever
// Encoded (never subtracted), every recovered element lands in InB and
// InA is empty: the decode simply recovers the encoded set.
type DecodeResult struct {
	InB     []uint64
	InA     []uint64
	Decoded bool
}

// Decode destructively peels the Filter down to the all-zero table,
// repeatedly isolating "pure" cells (count +1 or -1, with a checksum hash
// matching their idSum) and removing the element each one reveals from
// every cell that element touches. Decode mutates its receiver; callers
// wanting to retain the pre-decode state should Clone first.
//
// Decoded is true iff peeling fully reduced the table to zero. False
// means the residual structure exceeded the Filter's capacity
// (approximately n/(k+1)); in that case the Filter is left partially
// peeled and must not be reused.
func (f *Filter) Decode() (DecodeResult, error) {
	var result DecodeResult

	worklist := make([]uint32, 0, f.n)
	for idx := range f.table {
		if f.table[idx].isPure() {
			worklist = append(worklist, uint32(idx))
		}
	}

	for len(worklist) > 0 {
		i := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		c := f.table[i]
		if !c.isPure() {
			continue
		}

		e := c.idSum
		count := c.count
		if count > 0 {
			result.InB = append(result.InB, e)
		} else {
			result.InA = append(result.InA, e)
		}

		indices, err := f.IndicesFor(e)
		if err != nil {
			return DecodeResult{}, err
		}
		for _, j := range indices {
			f.table[j].remove(e, count)
			if f.table[j].isPure() {
				worklist = append(worklist, j)
			}
		}
	}

	for i := range f.table {
		if !f.table[i].isZero() {
			return result, nil
		}
	}
	result.Decoded = true
	return result, nil
}
