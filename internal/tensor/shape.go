package tensor

import (
	"fmt"

	"github.com/samber/lo"
)

// broadcastWindow is the operand limit of the windowed shape resolver.
const broadcastWindow = 32

// Shape represents the dimensions of an array. An empty shape is a scalar.
type Shape []int

// NumElements returns the total number of elements in the array.
func (s Shape) NumElements() int {
	n := 1 // Scalar has 1 element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions >= 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Concat returns a new shape made of s followed by dims.
func (s Shape) Concat(dims ...int) Shape {
	out := make(Shape, 0, len(s)+len(dims))
	out = append(out, s...)
	return append(out, dims...)
}

// ComputeStrides calculates row-major strides for the shape, in elements.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// broadcastPair implements NumPy-style broadcasting for two shapes.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5)
//	(1, 5) + (3, 5) → (3, 5)
//	(5,)   + (3, 1) → (3, 5)
//	(3, 4) + (3, 5) → Error
func broadcastPair(a, b Shape) (Shape, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
		case bDim == 1:
			result[maxLen-1-i] = aDim
		default:
			return nil, fmt.Errorf("%w: %v vs %v (dimension %d: %d vs %d)",
				ErrShapeMismatch, a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, nil
}

// BroadcastShapes returns the single shape every input shape broadcasts to.
// No shapes, or only scalar shapes, give the scalar shape ().
//
// Example:
//
//	BroadcastShapes(Shape{10}, Shape{}, Shape{3, 1}) // (3, 10)
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	result := Shape{}
	for _, s := range shapes {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		bc, err := broadcastPair(result, s)
		if err != nil {
			return nil, err
		}
		result = bc
	}
	return result, nil
}

// broadcastShapesWindowed resolves the broadcast shape a bounded number of
// operands at a time: the first window takes broadcastWindow shapes, later
// windows take one fewer because the running result fills a slot, unless the
// running result is still the scalar shape.
// It must always agree with BroadcastShapes.
func broadcastShapesWindowed(shapes []Shape) (Shape, error) {
	var bc Shape
	for idx := 0; idx < len(shapes); {
		var window []Shape
		if idx == 0 || len(bc) == 0 {
			window = lo.Slice(shapes, idx, idx+broadcastWindow)
			idx += broadcastWindow
		} else {
			window = append([]Shape{bc}, lo.Slice(shapes, idx, idx+broadcastWindow-1)...)
			idx += broadcastWindow - 1
		}

		var err error
		bc, err = BroadcastShapes(window...)
		if err != nil {
			return nil, err
		}
	}
	if bc == nil {
		bc = Shape{}
	}
	return bc, nil
}
