package ibf

import "encoding/json"

// cell is the reversible aggregate of every element hashed into a given
// table slot: count of contributions, XOR of the contributing elements,
// and XOR of each contributing element's checksum hash. The zero cell is
// the identity of the algebra below.
type cell struct {
	count   int32
	idSum   uint64
	hashSum uint32
}

// insert folds e into the cell as a +1 contribution.
func (c *cell) insert(e uint64) {
	c.count++
	c.idSum ^= e
	c.hashSum ^= checksumHash(e)
}

// remove undoes a pure cell's contribution: c is the count the pure cell
// carried (+1 or -1), so removing a pure +1 element decrements the count
// and removing a pure -1 element increments it, neutralising both.
func (c *cell) remove(e uint64, count int32) {
	c.count -= count
	c.idSum ^= e
	c.hashSum ^= checksumHash(e)
}

// subtract folds o's contribution out of c in place, so that, given two
// cells built from disjoint insert histories A and B, c ends up encoding
// A's history minus B's.
func (c *cell) subtract(o cell) {
	c.count -= o.count
	c.idSum ^= o.idSum
	c.hashSum ^= o.hashSum
}

// isZero reports whether every field of c is at its identity value.
func (c cell) isZero() bool {
	return c.count == 0 && c.idSum == 0 && c.hashSum == 0
}

// isPure reports whether c is consistent with holding exactly one signed
// element: its count is +1 or -1, and its hashSum matches the checksum
// hash of its idSum.
func (c cell) isPure() bool {
	if c.count != 1 && c.count != -1 {
		return false
	}
	return c.hashSum == checksumHash(c.idSum)
}

// cellJSON is the exported wire shape for cell: cell's own fields are
// unexported so that package consumers can't poke at table internals
// directly, so MarshalJSON/UnmarshalJSON round-trip through this shape
// instead of relying on the encoding/json default (which would silently
// drop every unexported field).
type cellJSON struct {
	Count   int32  `json:"count"`
	IDSum   uint64 `json:"id_sum"`
	HashSum uint32 `json:"hash_sum"`
}

func (c cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(cellJSON{Count: c.count, IDSum: c.idSum, HashSum: c.hashSum})
}

func (c *cell) UnmarshalJSON(data []byte) error {
	var wire cellJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	c.count, c.idSum, c.hashSum = wire.Count, wire.IDSum, wire.HashSum
	return nil
}
