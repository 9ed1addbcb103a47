package tensor

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// AsArray converts v to an array.
//
// Accepted values:
//   - *Array, returned as is (no copy)
//   - Go scalars: bool, signed and unsigned integers, floats, complex numbers
//   - one-dimensional slices of those scalar types
//
// Go integers map to the narrowest signed type that holds the whole Go type:
// int8, int16, uint16 and int32 become Int32; int, int64, uint32, uint and
// uint64 become Int64 (uint and uint64 values above math.MaxInt64 are rejected).
// uint8 stays Uint8.
func AsArray(v any) (*Array, error) {
	switch x := v.(type) {
	case *Array:
		if x == nil {
			return nil, fmt.Errorf("%w: nil array", ErrUnsupportedElement)
		}
		return x, nil

	case bool:
		return Scalar(x), nil
	case uint8:
		return Scalar(x), nil
	case int8:
		return signedArray([]int8{x}, Shape{}, Int32), nil
	case int16:
		return signedArray([]int16{x}, Shape{}, Int32), nil
	case int32:
		return Scalar(x), nil
	case int:
		return signedArray([]int{x}, Shape{}, Int64), nil
	case int64:
		return Scalar(x), nil
	case uint16:
		return unsignedArray([]uint16{x}, Shape{}, Int32)
	case uint32:
		return unsignedArray([]uint32{x}, Shape{}, Int64)
	case uint:
		return unsignedArray([]uint{x}, Shape{}, Int64)
	case uint64:
		return unsignedArray([]uint64{x}, Shape{}, Int64)
	case float32:
		return Scalar(x), nil
	case float64:
		return Scalar(x), nil
	case complex64:
		return Scalar(x), nil
	case complex128:
		return Scalar(x), nil

	case []bool:
		return Vector(x), nil
	case []uint8:
		return Vector(x), nil
	case []int8:
		return signedArray(x, Shape{len(x)}, Int32), nil
	case []int16:
		return signedArray(x, Shape{len(x)}, Int32), nil
	case []int32:
		return Vector(x), nil
	case []int:
		return signedArray(x, Shape{len(x)}, Int64), nil
	case []int64:
		return Vector(x), nil
	case []uint16:
		return unsignedArray(x, Shape{len(x)}, Int32)
	case []uint32:
		return unsignedArray(x, Shape{len(x)}, Int64)
	case []uint:
		return unsignedArray(x, Shape{len(x)}, Int64)
	case []uint64:
		return unsignedArray(x, Shape{len(x)}, Int64)
	case []float32:
		return Vector(x), nil
	case []float64:
		return Vector(x), nil
	case []complex64:
		return Vector(x), nil
	case []complex128:
		return Vector(x), nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedElement, v)
	}
}

// signedArray stores signed integers of any width into an integer array.
func signedArray[T constraints.Signed](data []T, shape Shape, dtype DataType) *Array {
	a, err := NewArray(shape, dtype)
	if err != nil {
		panic(err) // Shape is built from len(data)
	}
	for i, v := range data {
		a.store(i, intScalar(int64(v)))
	}
	return a
}

// unsignedArray stores unsigned integers into a signed integer array,
// rejecting values the signed type cannot hold.
func unsignedArray[T constraints.Unsigned](data []T, shape Shape, dtype DataType) (*Array, error) {
	a, err := NewArray(shape, dtype)
	if err != nil {
		return nil, err
	}
	for i, v := range data {
		if uint64(v) > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows %s", ErrUnsupportedElement, v, dtype)
		}
		a.store(i, intScalar(int64(v))) //nolint:gosec // G115: range checked above
	}
	return a, nil
}
