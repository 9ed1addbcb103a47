// Copyright 2025 Wavestate Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stack builds vector and matrix arrays out of heterogeneously shaped
// elements.
//
// Elements may be scalars, one-dimensional Go slices or *tensor.Array values
// of any shape. All elements are broadcast to their common shape B and the
// caller's layout is appended as trailing axes, so a 2 x 2 matrix whose
// entries vary along a frequency axis of length 10 becomes one (10, 2, 2)
// array:
//
//	f := tensor.Vector(freqs) // shape (10,)
//	m, err := stack.Matrix([][]any{
//	    {f, 0},
//	    {2, f},
//	})
//	// m.Shape() == (10, 2, 2)
//
// When every element is a scalar no broadcast axis is added and the result
// is the plain (R, C) or (N,) array.
package stack

import (
	"github.com/go-logr/logr"

	"github.com/IanAMacMillan/wavestate-utilities/internal/stack"
	"github.com/IanAMacMillan/wavestate-utilities/tensor"
)

// Option configures a stacking call.
type Option = stack.Option

var (
	// ErrRaggedInput is returned when matrix rows differ in length.
	ErrRaggedInput = stack.ErrRaggedInput

	// ErrEmptyInput is returned when there are no elements to stack.
	ErrEmptyInput = stack.ErrEmptyInput
)

// WithDType forces the result data type instead of promoting element types.
func WithDType(dtype tensor.DataType) Option {
	return stack.WithDType(dtype)
}

// WithLogger sets the logger used for V(1) tracing.
func WithLogger(logger logr.Logger) Option {
	return stack.WithLogger(logger)
}

// Vector stacks items into an array of shape B + (N,).
func Vector(items []any, opts ...Option) (*tensor.Array, error) {
	return stack.Vector(items, opts...)
}

// Matrix stacks rows into an array of shape B + (R, C).
// Rows of unequal length fail with ErrRaggedInput.
func Matrix(rows [][]any, opts ...Option) (*tensor.Array, error) {
	return stack.Matrix(rows, opts...)
}

// Identity stacks an N x N matrix with the given diagonal and integer zeros
// elsewhere.
func Identity(diagonal []any, opts ...Option) (*tensor.Array, error) {
	return stack.Identity(diagonal, opts...)
}
