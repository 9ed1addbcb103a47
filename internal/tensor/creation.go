package tensor

import (
	"fmt"
	"unsafe"
)

// FromSlice creates an array from a Go slice.
// The slice is copied into the array's memory.
//
// Example:
//
//	m, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrSizeMismatch, shape, shape.NumElements(), len(data))
	}

	var dummy T
	a, err := NewArray(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}
	copy(contiguousData[T](a), data)
	return a, nil
}

// Vector creates a one-dimensional array holding a copy of data.
func Vector[T DType](data []T) *Array {
	a, err := FromSlice(data, Shape{len(data)})
	if err != nil {
		panic(err) // Shape always matches data
	}
	return a
}

// Scalar creates a zero-dimensional array holding v.
func Scalar[T DType](v T) *Array {
	a, err := FromSlice([]T{v}, Shape{})
	if err != nil {
		panic(err) // Scalar shape always holds one element
	}
	return a
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	t, _ := tensor.Full(Shape{3, 3}, 3.14)
func Full[T DType](shape Shape, value T) (*Array, error) {
	var dummy T
	a, err := NewArray(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}
	data := contiguousData[T](a)
	for i := range data {
		data[i] = value
	}
	return a, nil
}

// contiguousData interprets a freshly allocated array's buffer as []T.
// T must match the array's dtype and the array must be contiguous with offset 0.
func contiguousData[T DType](a *Array) []T {
	n := a.NumElements()
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy fill, bounds checked by NumElements()
	return unsafe.Slice((*T)(unsafe.Pointer(&a.buffer[0])), n)
}
