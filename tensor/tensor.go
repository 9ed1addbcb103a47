// Copyright 2025 Wavestate Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/IanAMacMillan/wavestate-utilities/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for array element types.
// Supported types: bool, uint8, int32, int64, float32, float64, complex64, complex128.
type DType = tensor.DType

// DataType represents the underlying data type of an array.
type DataType = tensor.DataType

// Data type constants.
const (
	Bool       DataType = tensor.Bool
	Uint8      DataType = tensor.Uint8
	Int32      DataType = tensor.Int32
	Int64      DataType = tensor.Int64
	Float32    DataType = tensor.Float32
	Float64    DataType = tensor.Float64
	Complex64  DataType = tensor.Complex64
	Complex128 DataType = tensor.Complex128
)

// Kind is the promotion class of a DataType.
type Kind = tensor.Kind

// Kind constants, ordered by promotion rank.
const (
	KindBool     Kind = tensor.KindBool
	KindUnsigned Kind = tensor.KindUnsigned
	KindSigned   Kind = tensor.KindSigned
	KindFloat    Kind = tensor.KindFloat
	KindComplex  Kind = tensor.KindComplex
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4;
// Shape{} is a scalar.
type Shape = tensor.Shape

// Array is a strided n-dimensional array.
type Array = tensor.Array

// Errors

var (
	// ErrShapeMismatch is returned when shapes cannot be broadcast together.
	ErrShapeMismatch = tensor.ErrShapeMismatch

	// ErrInvalidShape is returned for shapes with negative dimensions.
	ErrInvalidShape = tensor.ErrInvalidShape

	// ErrSizeMismatch is returned when a data slice does not fill its shape.
	ErrSizeMismatch = tensor.ErrSizeMismatch

	// ErrUnsupportedElement is returned by AsArray for unsupported values.
	ErrUnsupportedElement = tensor.ErrUnsupportedElement

	// ErrReadOnly is returned when assigning into a broadcast view.
	ErrReadOnly = tensor.ErrReadOnly
)

// Creation functions

// NewArray creates a zero-filled array with the given shape and dtype.
func NewArray(shape Shape, dtype DataType) (*Array, error) {
	return tensor.NewArray(shape, dtype)
}

// FromSlice creates an array from a Go slice.
//
// Example:
//
//	data := []float64{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*Array, error) {
	return tensor.FromSlice(data, shape)
}

// Vector creates a one-dimensional array from a Go slice.
func Vector[T DType](data []T) *Array {
	return tensor.Vector(data)
}

// Scalar creates a zero-dimensional array.
//
// Example:
//
//	x := tensor.Scalar(complex(1, 2))
func Scalar[T DType](v T) *Array {
	return tensor.Scalar(v)
}

// Full creates an array filled with a specific value.
func Full[T DType](shape Shape, value T) (*Array, error) {
	return tensor.Full(shape, value)
}

// AsArray converts a Go scalar, a one-dimensional Go slice or an *Array to an array.
func AsArray(v any) (*Array, error) {
	return tensor.AsArray(v)
}

// Access functions

// Value returns the element at the given indices converted to T.
func Value[T DType](a *Array, indices ...int) T {
	return tensor.Value[T](a, indices...)
}

// Values returns a row-major copy of all elements converted to T.
func Values[T DType](a *Array) []T {
	return tensor.Values[T](a)
}

// Type promotion

// PromoteTypes returns the smallest data type both a and b convert to safely.
func PromoteTypes(a, b DataType) DataType {
	return tensor.PromoteTypes(a, b)
}

// ResultType folds PromoteTypes over dtypes. Panics on an empty list.
func ResultType(dtypes ...DataType) DataType {
	return tensor.ResultType(dtypes...)
}

// Broadcasting

// BroadcastShapes returns the shape every input shape broadcasts to.
//
// Example:
//
//	bc, err := tensor.BroadcastShapes(tensor.Shape{10}, tensor.Shape{}, tensor.Shape{3, 1})
//	// bc == (3, 10)
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	return tensor.BroadcastShapes(shapes...)
}

// BroadcastTo returns a read-only view of a broadcast to shape.
func BroadcastTo(a *Array, shape Shape) (*Array, error) {
	return tensor.BroadcastTo(a, shape)
}

// BroadcastAll broadcasts every array to their common shape, returning
// read-only views in input order.
func BroadcastAll(arrays ...*Array) ([]*Array, error) {
	return tensor.BroadcastAll(arrays...)
}

// BroadcastAllOptional is BroadcastAll that skips nil entries and returns nil
// in their positions.
func BroadcastAllOptional(arrays ...*Array) ([]*Array, error) {
	return tensor.BroadcastAllOptional(arrays...)
}
