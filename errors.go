package ibf

import "errors"

// Sentinel errors for the three-way taxonomy of failure modes this
// package recognizes. DecodeIncomplete is deliberately absent here:
// it is not an error, it is the capacity-exceeded boolean result of
// Decode (see decode.go).
var (
	// ErrPreconditionViolation is returned by New when the requested
	// (d, k, alpha) parameters cannot produce a valid table, and by
	// Encode if a placement index ever falls outside the table (which
	// indicates a bug in indicesFor, not a legitimate runtime error).
	ErrPreconditionViolation = errors.New("ibf: precondition violation")

	// ErrParameterMismatch is returned by Subtract when self, other,
	// and result do not all share the same (n, k).
	ErrParameterMismatch = errors.New("ibf: parameter mismatch")

	// ErrHashSaturation is returned by indicesFor if k distinct indices
	// cannot be collected within maxRehashRounds rehash iterations.
	ErrHashSaturation = errors.New("ibf: hash saturation")
)
