package metrics

import "errors"

var (
	// ErrDuplicateMetric is returned by Register when a descriptor with the
	// same name is already registered.
	ErrDuplicateMetric = errors.New("metric already registered")

	// ErrInvalidBuckets is returned by Register when histogram bucket
	// boundaries are missing, non-finite, or not strictly increasing.
	ErrInvalidBuckets = errors.New("invalid histogram buckets")

	// ErrInvalidDescriptor is returned by Register for malformed metric or
	// label names and unknown metric kinds.
	ErrInvalidDescriptor = errors.New("invalid metric descriptor")

	// ErrObservation is returned by instrument mutations whose label values
	// do not match the descriptor, or whose value is not legal for the kind.
	// Callers on the request path drop these errors.
	ErrObservation = errors.New("invalid observation")
)
