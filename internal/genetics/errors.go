package genetics

import "errors"

// All three are configuration or programmer errors, never transient. They
// propagate synchronously and are never retried.
var (
	// ErrInvalidWeightMap reports an empty or all-zero weight map handed to
	// the selector.
	ErrInvalidWeightMap = errors.New("invalid weight map; must be non-empty with positive total weight")

	// ErrUnknownLocus reports a genotype entry for a locus or allele the
	// registry does not declare. Unknown genetic data is never silently
	// ignored.
	ErrUnknownLocus = errors.New("unknown locus or allele")

	// ErrMissingBreedProfile reports a bias table lookup that found neither
	// the resolved key nor the Default fallback.
	ErrMissingBreedProfile = errors.New("breed profile missing required bias table")
)
