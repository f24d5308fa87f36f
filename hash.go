package ibf

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// maxRehashRounds bounds the rehash-until-distinct loop in indicesFor.
// The source this package is modeled on leaves that loop unbounded; this
// package caps it and reports ErrHashSaturation instead of risking an
// unbounded loop on a pathological (k, n) pair.
const maxRehashRounds = 256

// placementHash is H in the placement scheme: a standard, non-cryptographic
// hash over the decimal string form of its input.
func placementHash(x uint64) uint32 {
	return murmur3.Sum32([]byte(strconv.FormatUint(x, 10)))
}

// checksumHash is the second, independent hash family used for the purity
// test. It must be distinguishable from placementHash so that cells don't
// trivially pass isPure; it uses a different hash family (xxhash) over a
// salted input, so the two agree on a given element only by chance.
func checksumHash(e uint64) uint32 {
	return uint32(xxhash.Sum64String(strconv.FormatUint(e, 10) + "checksum"))
}

// indicesFor deterministically derives k distinct cell indices in [0, n)
// for e. It seeds a digest from e, then repeatedly rehashes the previous
// digest (via placementHash) until k distinct indices mod n have been
// collected. The result is deterministic across any two Filters built
// with the same n, independent of k or of any other filter state.
func indicesFor(e uint64, n, k uint32) ([]uint32, error) {
	seen := make(map[uint32]struct{}, k)
	indices := make([]uint32, 0, k)

	digest := placementHash(e)
	for round := 0; len(indices) < int(k); round++ {
		if round > maxRehashRounds {
			return nil, ErrHashSaturation
		}
		idx := digest % n
		if _, dup := seen[idx]; !dup {
			seen[idx] = struct{}{}
			indices = append(indices, idx)
		}
		digest = placementHash(uint64(digest))
	}
	return indices, nil
}
