package stack

import "errors"

var (
	// ErrRaggedInput is returned when matrix rows differ in length.
	// It is reported before any element is converted or broadcast.
	ErrRaggedInput = errors.New("stack: rows have unequal lengths")

	// ErrEmptyInput is returned when there are no elements to infer the
	// result shape and data type from.
	ErrEmptyInput = errors.New("stack: at least one element required")
)
