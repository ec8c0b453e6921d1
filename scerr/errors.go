// Package scerr defines the sentinel error kinds shared across scl's
// packages, so callers can classify a failure with errors.Is regardless of
// which subsystem produced it.
package scerr

import "errors"

var (
	// ErrInvalidInput means the caller violated an API contract: sharing
	// for zero parties, dividing by the zero polynomial, mis-sized input,
	// mismatched vector/matrix dimensions, and similar.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIntegrityFailure means data failed a cryptographic consistency
	// check: a tampered Shamir share under detect/correct, or a failed
	// Feldman/Pedersen verification propagated as an error instead of a
	// bool.
	ErrIntegrityFailure = errors.New("integrity failure")

	// ErrNotOnCurve means affine coordinates do not satisfy the curve
	// equation.
	ErrNotOnCurve = errors.New("point not on curve")

	// ErrUnsupported means the requested operation does not apply, e.g.
	// inverting a non-square matrix.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrCancelled means a party cancelled itself (coroutine.Awaiter's
	// CancelSelf); the simulator records it as a CANCELLED event rather
	// than a KILLED one. A party cancelled by another party or by a hook
	// gets no error: it is simply never resumed.
	ErrCancelled = errors.New("cancelled")

	// ErrMalformed means serialized input was truncated or carried an
	// impossible length prefix.
	ErrMalformed = errors.New("malformed input")
)
