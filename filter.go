package ibf

import (
	"encoding/json"
	"fmt"
	"math"
)

// defaultAlpha is the space overhead factor applied when a Filter is
// constructed with NewDefault: the table holds alpha cells for every
// expected differing element.
const defaultAlpha = 1.5

// defaultQueryThreshold is the cell-count threshold Contains compares
// against when none is supplied explicitly.
const defaultQueryThreshold = 1

// Filter is an Invertible Bloom Filter over uint64 elements. Its
// parameters (n, k, queryThreshold) are fixed at construction; the table
// is mutated by Encode (additive) and by being the target of Subtract,
// and consumed destructively by Decode. The zero value is not usable;
// construct with New or NewDefault.
type Filter struct {
	n              uint32
	k              uint32
	queryThreshold int32
	table          []cell
}

// New constructs a Filter sized to reconcile a symmetric difference of up
// to d elements, hashing each element into k cells, with alpha cells
// allocated per expected differing element and a membership threshold of
// queryThreshold. n is set to ceil(d*alpha).
//
// Returns ErrPreconditionViolation if d < 1, k < 1, or the resulting
// table would have fewer cells than k.
func New(d, k uint32, alpha float64, queryThreshold int32) (*Filter, error) {
	if d < 1 {
		return nil, fmt.Errorf("%w: d must be >= 1, got %d", ErrPreconditionViolation, d)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be >= 1, got %d", ErrPreconditionViolation, k)
	}
	n := uint32(math.Ceil(float64(d) * alpha))
	if n < k {
		return nil, fmt.Errorf("%w: n=ceil(d*alpha)=%d is smaller than k=%d", ErrPreconditionViolation, n, k)
	}
	return &Filter{
		n:              n,
		k:              k,
		queryThreshold: queryThreshold,
		table:          make([]cell, n),
	}, nil
}

// NewDefault constructs a Filter using the package defaults for alpha
// (1.5) and queryThreshold (1).
func NewDefault(d, k uint32) (*Filter, error) {
	return New(d, k, defaultAlpha, defaultQueryThreshold)
}

// N returns the number of cells in the table.
func (f *Filter) N() uint32 { return f.n }

// K returns the number of hash placements per element.
func (f *Filter) K() uint32 { return f.k }

// IndicesFor exposes the hash placement scheme for testing: it returns
// the k distinct cell indices element e hashes into under this Filter's
// n. Exported per the public-contract requirement that indicesFor be
// testable independent of encode/decode.
func (f *Filter) IndicesFor(e uint64) ([]uint32, error) {
	return indicesFor(e, f.n, f.k)
}

// Encode inserts every element of set into the Filter. Encode is
// additive: it does not reset prior state, and duplicates in set each
// contribute independently (multiset semantics). Call Clear first for
// replace semantics.
func (f *Filter) Encode(set []uint64) error {
	for _, e := range set {
		indices, err := f.IndicesFor(e)
		if err != nil {
			return err
		}
		for _, idx := range indices {
			if idx >= f.n {
				return fmt.Errorf("%w: placement index %d out of range for table of size %d", ErrPreconditionViolation, idx, f.n)
			}
			f.table[idx].insert(e)
		}
	}
	return nil
}

// Clear resets the Filter to its freshly-constructed, all-zero state
// without changing (n, k, queryThreshold).
func (f *Filter) Clear() {
	for i := range f.table {
		f.table[i] = cell{}
	}
}

// Subtract computes self - other and stores the result in result. self,
// other, and result must all share the same (n, k); otherwise Subtract
// returns ErrParameterMismatch and leaves result untouched.
func (f *Filter) Subtract(other, result *Filter) error {
	if f.n != other.n || f.n != result.n {
		return fmt.Errorf("%w: table size n differs (self=%d other=%d result=%d)", ErrParameterMismatch, f.n, other.n, result.n)
	}
	if f.k != other.k || f.k != result.k {
		return fmt.Errorf("%w: hash count k differs (self=%d other=%d result=%d)", ErrParameterMismatch, f.k, other.k, result.k)
	}
	for i := range f.table {
		c := f.table[i]
		c.subtract(other.table[i])
		result.table[i] = c
	}
	return nil
}

// Contains reports whether e appears to be a member of the Filter. It is
// only meaningful on a Filter that has only ever been encoded (never
// subtracted or decoded); on an encode-only Filter it has no false
// negatives. Behavior on a subtracted Filter is undefined — callers must
// not rely on it there.
func (f *Filter) Contains(e uint64) (bool, error) {
	indices, err := f.IndicesFor(e)
	if err != nil {
		return false, err
	}
	for _, idx := range indices {
		if f.table[idx].count < f.queryThreshold {
			return false, nil
		}
	}
	return true, nil
}

// Clone returns a deep, detached copy of the Filter, round-tripping it
// through JSON. Decode mutates its receiver destructively; callers that
// need to retain the pre-decode state should Clone first.
func (f *Filter) Clone() (*Filter, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("ibf: marshal for clone: %w", err)
	}
	clone := &Filter{}
	if err := json.Unmarshal(data, clone); err != nil {
		return nil, fmt.Errorf("ibf: unmarshal for clone: %w", err)
	}
	return clone, nil
}

// filterJSON is the wire shape used by Clone's marshal round-trip.
type filterJSON struct {
	N              uint32 `json:"n"`
	K              uint32 `json:"k"`
	QueryThreshold int32  `json:"query_threshold"`
	Table          []cell `json:"table"`
}

// MarshalJSON implements json.Marshaler for Filter.
func (f *Filter) MarshalJSON() ([]byte, error) {
	return json.Marshal(filterJSON{
		N:              f.n,
		K:              f.k,
		QueryThreshold: f.queryThreshold,
		Table:          f.table,
	})
}

// UnmarshalJSON implements json.Unmarshaler for Filter.
func (f *Filter) UnmarshalJSON(data []byte) error {
	var wire filterJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	f.n = wire.N
	f.k = wire.K
	f.queryThreshold = wire.QueryThreshold
	f.table = wire.Table
	return nil
}

// String renders one diagnostic line per cell:
// "idx | count: C id_sum: I hash_sum: H".
func (f *Filter) String() string {
	out := ""
	for idx, c := range f.table {
		out += fmt.Sprintf("%d | count: %d id_sum: %d hash_sum: %d\n", idx, c.count, c.idSum, c.hashSum)
	}
	return out
}
