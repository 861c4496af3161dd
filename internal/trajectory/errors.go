package trajectory

import "errors"

// Construction errors. Both are fatal: a dataset is never silently
// defaulted from bad input.
var (
	// ErrInvalidShape indicates the input matrix does not have exactly
	// five columns, or a raw row slice is not rectangular.
	ErrInvalidShape = errors.New("trajectory: dataset shape must be (N,5)")

	// ErrInvalidType indicates the input is not a recognized dense
	// numeric matrix.
	ErrInvalidType = errors.New("trajectory: dataset must be a dense numeric matrix")
)
