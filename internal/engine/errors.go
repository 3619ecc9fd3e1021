package engine

import "errors"

// Pipeline error taxonomy. A single resolver failure degrades to the
// fallback path; only when neither resolver yields usable input does the
// run fail, always with ErrInsufficientData. No partial results are ever
// returned on failure.
var (
	// ErrInsufficientData means neither a transcript nor sufficiently
	// detailed metadata is available for the video. Terminal, no retry.
	ErrInsufficientData = errors.New("transcript and metadata not sufficient to generate content")

	// ErrResolverFailure wraps an underlying network or data-source error
	// from a resolver. Callers treat it like "resolver returned nothing".
	ErrResolverFailure = errors.New("resolver failure")
)
