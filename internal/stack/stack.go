// Package stack builds vector and matrix arrays out of heterogeneously shaped elements.
//
// Each element is broadcast into the common shape of all elements, and the
// caller's layout becomes the trailing axes of the result:
//
//	Vector of N elements:      B + (N,)
//	Matrix of R rows x C cols: B + (R, C)
//
// where B is the broadcast shape of the elements. Putting the layout last
// keeps batched matrix products and inverses working on the final two axes.
package stack

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/IanAMacMillan/wavestate-utilities/internal/tensor"
)

// Vector stacks items into an array of shape B + (N,), where out[..., i] is
// items[i] broadcast to B.
//
// Items are converted with tensor.AsArray. When every item is a scalar the
// result is the plain length-N array of the values.
//
// Example:
//
//	v, err := stack.Vector([]any{[]float64{1, 2, 3}, 0})
//	// v.Shape() == (3, 2)
func Vector(items []any, opts ...Option) (*tensor.Array, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("vector: %w", ErrEmptyInput)
	}

	vals := make([]*tensor.Array, len(items))
	for i, item := range items {
		v, err := tensor.AsArray(item)
		if err != nil {
			return nil, fmt.Errorf("vector: element %d: %w", i, err)
		}
		vals[i] = v
	}

	return stackInto(vals, tensor.Shape{len(items)}, newOptions(opts))
}

// Matrix stacks rows into an array of shape B + (R, C), where out[..., r, c]
// is rows[r][c] broadcast to B.
//
// All rows must have the same length; this is checked before any element is
// looked at. When every element is a scalar the result is the plain R x C
// array of the values.
//
// Example:
//
//	m, err := stack.Matrix([][]any{
//	    {x, 0},
//	    {2, x},
//	})
//	// with x of shape (10,), m.Shape() == (10, 2, 2)
func Matrix(rows [][]any, opts ...Option) (*tensor.Array, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("matrix: %w", ErrEmptyInput)
	}

	ncols := len(rows[0])
	for r, row := range rows {
		if len(row) != ncols {
			return nil, fmt.Errorf("matrix: %w: row %d has %d elements, row 0 has %d",
				ErrRaggedInput, r, len(row), ncols)
		}
	}
	if ncols == 0 {
		return nil, fmt.Errorf("matrix: %w", ErrEmptyInput)
	}

	vals := make([]*tensor.Array, 0, len(rows)*ncols)
	for r, row := range rows {
		for c, elem := range row {
			v, err := tensor.AsArray(elem)
			if err != nil {
				return nil, fmt.Errorf("matrix: element (%d, %d): %w", r, c, err)
			}
			vals = append(vals, v)
		}
	}

	return stackInto(vals, tensor.Shape{len(rows), ncols}, newOptions(opts))
}

// Identity stacks an N x N matrix with diagonal[i] at (i, i) and the integer
// scalar 0 everywhere else. Options are passed through to Matrix.
func Identity(diagonal []any, opts ...Option) (*tensor.Array, error) {
	if len(diagonal) == 0 {
		return nil, fmt.Errorf("identity: %w", ErrEmptyInput)
	}

	n := len(diagonal)
	rows := lo.Times(n, func(i int) []any {
		row := lo.Times(n, func(int) any { return 0 })
		row[i] = diagonal[i]
		return row
	})
	return Matrix(rows, opts...)
}

// stackInto allocates B + layout and assigns vals, flattened row-major over
// layout, into their slots.
func stackInto(vals []*tensor.Array, layout tensor.Shape, o *options) (*tensor.Array, error) {
	dtype := o.dtype
	if !o.hasDType {
		dtype = tensor.ResultType(lo.Map(vals, func(v *tensor.Array, _ int) tensor.DataType { return v.DType() })...)
	}

	bc, err := tensor.BroadcastShapes(lo.Map(vals, func(v *tensor.Array, _ int) tensor.Shape { return v.Shape() })...)
	if err != nil {
		return nil, err
	}

	out, err := tensor.NewArray(bc.Concat(layout...), dtype)
	if err != nil {
		return nil, err
	}

	slot := make([]int, len(layout))
	for i, v := range vals {
		unravel(i, layout, slot)
		if err := out.Assign(v, slot...); err != nil {
			return nil, err
		}
	}

	o.logger.V(1).Info("stacked elements",
		"elements", len(vals),
		"broadcastShape", []int(bc),
		"dtype", dtype.String(),
		"shape", []int(out.Shape()))
	return out, nil
}

// unravel writes the row-major coordinates of flat index i within shape into coords.
func unravel(i int, shape tensor.Shape, coords []int) {
	for d := len(shape) - 1; d >= 0; d-- {
		coords[d] = i % shape[d]
		i /= shape[d]
	}
}
