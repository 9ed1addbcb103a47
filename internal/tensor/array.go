package tensor

import (
	"fmt"
	"unsafe"
)

// Array is a strided n-dimensional array over a byte buffer.
//
// Arrays created by NewArray, FromSlice and friends are contiguous row-major
// and writable. Broadcast views (BroadcastTo, BroadcastAll) share the source
// buffer, carry stride 0 on stretched axes and are read-only.
type Array struct {
	buffer   []byte   // Backing storage, possibly shared with views
	shape    Shape    // Array dimensions
	stride   []int    // Strides in elements (not bytes)
	dtype    DataType // Runtime type information
	offset   int      // Element offset of index (0, ..., 0)
	readOnly bool     // Set on broadcast views
}

// NewArray creates a contiguous array with the given shape and type.
// Memory is zero-initialized.
func NewArray(shape Shape, dtype DataType) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	return &Array{
		buffer: make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// Strides returns the array's strides, in elements.
func (a *Array) Strides() []int {
	return a.stride
}

// DType returns the array's data type.
func (a *Array) DType() DataType {
	return a.dtype
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int {
	return len(a.shape)
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// ReadOnly reports whether the array is a read-only view.
func (a *Array) ReadOnly() bool {
	return a.readOnly
}

// IsContiguous reports whether the elements are laid out row-major without gaps.
func (a *Array) IsContiguous() bool {
	expected := a.shape.ComputeStrides()
	for i, dim := range a.shape {
		if dim > 1 && a.stride[i] != expected[i] {
			return false
		}
	}
	return true
}

// SharesMemory reports whether a and other are backed by the same buffer.
func (a *Array) SharesMemory(other *Array) bool {
	if len(a.buffer) == 0 || len(other.buffer) == 0 {
		return false
	}
	return unsafe.SliceData(a.buffer) == unsafe.SliceData(other.buffer)
}

// String returns a human-readable description of the array.
func (a *Array) String() string {
	return fmt.Sprintf("Array[%s]%v", a.dtype, a.shape)
}

// flatIndex converts indices to a buffer element index.
// Panics if indices are out of bounds.
func (a *Array) flatIndex(indices []int) int {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(a.shape), len(indices)))
	}

	pos := a.offset
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i]))
		}
		pos += idx * a.stride[i]
	}
	return pos
}

// ptr returns the address of the element at buffer index pos.
func (a *Array) ptr(pos int) unsafe.Pointer {
	//nolint:gosec // element addressing, pos is bounds checked by callers
	return unsafe.Pointer(&a.buffer[pos*a.dtype.Size()])
}

// load reads the element at buffer index pos.
func (a *Array) load(pos int) scalar {
	p := a.ptr(pos)
	switch a.dtype {
	case Bool:
		return boolScalar(*(*bool)(p))
	case Uint8:
		return intScalar(int64(*(*uint8)(p)))
	case Int32:
		return intScalar(int64(*(*int32)(p)))
	case Int64:
		return intScalar(*(*int64)(p))
	case Float32:
		return floatScalar(float64(*(*float32)(p)))
	case Float64:
		return floatScalar(*(*float64)(p))
	case Complex64:
		return complexScalar(complex128(*(*complex64)(p)))
	case Complex128:
		return complexScalar(*(*complex128)(p))
	default:
		panic(fmt.Sprintf("load: unsupported dtype %v", a.dtype))
	}
}

// store writes v, converted to the array's dtype, at buffer index pos.
func (a *Array) store(pos int, v scalar) {
	p := a.ptr(pos)
	switch a.dtype {
	case Bool:
		*(*bool)(p) = v.asBool()
	case Uint8:
		*(*uint8)(p) = uint8(v.asInt64()) //nolint:gosec // G115: truncation follows C cast semantics
	case Int32:
		*(*int32)(p) = int32(v.asInt64()) //nolint:gosec // G115: truncation follows C cast semantics
	case Int64:
		*(*int64)(p) = v.asInt64()
	case Float32:
		*(*float32)(p) = float32(v.asFloat64())
	case Float64:
		*(*float64)(p) = v.asFloat64()
	case Complex64:
		*(*complex64)(p) = complex64(v.asComplex128())
	case Complex128:
		*(*complex128)(p) = v.asComplex128()
	default:
		panic(fmt.Sprintf("store: unsupported dtype %v", a.dtype))
	}
}

// At returns the element at the given indices as a Go value of the array's
// dtype (float64 for Float64, complex64 for Complex64, ...).
// Panics if indices are out of bounds.
//
// Example:
//
//	m, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
//	v := m.At(1, 0).(float64) // 3
func (a *Array) At(indices ...int) any {
	return a.load(a.flatIndex(indices)).native(a.dtype)
}

// Set sets the element at the given indices, converting value to the array's dtype.
// Panics if indices are out of bounds, the array is read-only or value is not a
// supported scalar.
func (a *Array) Set(value any, indices ...int) {
	if a.readOnly {
		panic(ErrReadOnly.Error())
	}
	v, err := scalarOf(value)
	if err != nil {
		panic(err.Error())
	}
	a.store(a.flatIndex(indices), v)
}

// Item returns the value of a single-element array.
// Panics if the array has more than one element.
func (a *Array) Item() any {
	if a.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for single-element arrays, got shape %v", a.shape))
	}
	return a.load(a.offset).native(a.dtype)
}

// Value returns the element at the given indices converted to T.
// Panics if indices are out of bounds.
func Value[T DType](a *Array, indices ...int) T {
	return scalarAs[T](a.load(a.flatIndex(indices)))
}

// Values returns a row-major copy of all elements converted to T.
//
// Example:
//
//	v, _ := FromSlice([]int64{1, 2}, Shape{2})
//	Values[float64](v) // []float64{1, 2}
func Values[T DType](a *Array) []T {
	out := make([]T, 0, a.NumElements())
	walk(a.shape, a.stride, a.offset, func(pos int) {
		out = append(out, scalarAs[T](a.load(pos)))
	})
	return out
}

// Clone returns a contiguous, writable copy of the array.
func (a *Array) Clone() *Array {
	return a.Cast(a.dtype)
}

// Cast returns a contiguous, writable copy of the array converted to dtype.
// The result never shares memory with a, even when dtype is unchanged.
func (a *Array) Cast(dtype DataType) *Array {
	result, err := NewArray(a.shape, dtype)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err)) // a.shape is already valid
	}
	walk2(a.shape, a.stride, a.offset, result.stride, 0, func(src, dst int) {
		result.store(dst, a.load(src))
	})
	return result
}

// Assign copies src, broadcast over the leading axes, into a[..., trailing...].
// The trailing indices fix the last len(trailing) axes of a; src must
// broadcast to the remaining leading shape. Values are converted to a's dtype.
//
// Example:
//
//	out, _ := NewArray(Shape{10, 2, 2}, Float64)
//	_ = out.Assign(Scalar(0.0), 0, 1) // out[..., 0, 1] = 0
func (a *Array) Assign(src *Array, trailing ...int) error {
	if a.readOnly {
		return ErrReadOnly
	}
	if len(trailing) > len(a.shape) {
		return fmt.Errorf("assign: %d trailing indices for %d-dimensional array", len(trailing), len(a.shape))
	}

	lead := len(a.shape) - len(trailing)
	base := a.offset
	for i, idx := range trailing {
		dim := lead + i
		if idx < 0 || idx >= a.shape[dim] {
			return fmt.Errorf("assign: index %d out of bounds for dimension %d (size %d)", idx, dim, a.shape[dim])
		}
		base += idx * a.stride[dim]
	}

	leadShape := a.shape[:lead]
	view, err := BroadcastTo(src, leadShape)
	if err != nil {
		return fmt.Errorf("assign: %w", err)
	}

	walk2(leadShape, view.stride, view.offset, a.stride[:lead], base, func(s, d int) {
		a.store(d, view.load(s))
	})
	return nil
}

// walk calls fn with the buffer index of every element of a strided layout,
// in row-major order.
func walk(shape Shape, strides []int, offset int, fn func(pos int)) {
	walk2(shape, strides, offset, strides, offset, func(pos, _ int) { fn(pos) })
}

// walk2 iterates two strided layouts of the same shape in lockstep.
func walk2(shape Shape, stridesA []int, offsetA int, stridesB []int, offsetB int, fn func(posA, posB int)) {
	n := shape.NumElements()
	if n == 0 {
		return
	}

	coords := make([]int, len(shape))
	posA, posB := offsetA, offsetB
	for i := 0; i < n; i++ {
		fn(posA, posB)

		// Odometer increment from the last axis.
		for d := len(shape) - 1; d >= 0; d-- {
			coords[d]++
			posA += stridesA[d]
			posB += stridesB[d]
			if coords[d] < shape[d] {
				break
			}
			posA -= stridesA[d] * shape[d]
			posB -= stridesB[d] * shape[d]
			coords[d] = 0
		}
	}
}
