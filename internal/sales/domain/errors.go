package domain

import "errors"

var (
	// ErrDuplicateDetail reports a second line item for the same
	// (order, product) pair. Duplicates are rejected, never merged.
	ErrDuplicateDetail = errors.New("duplicate order detail")
)
