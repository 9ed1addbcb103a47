package tensor

import (
	"fmt"

	"github.com/samber/lo"
)

// BroadcastTo returns a read-only view of a broadcast to shape.
// The view shares a's buffer; stretched and prepended axes get stride 0.
//
// Example:
//
//	v := Vector([]float64{1, 2, 3})
//	m, _ := BroadcastTo(v, Shape{4, 3}) // every row is [1, 2, 3]
func BroadcastTo(a *Array, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(shape) < len(a.shape) {
		return nil, fmt.Errorf("%w: cannot broadcast %v to %v (fewer dimensions)",
			ErrShapeMismatch, a.shape, shape)
	}

	// Align shapes from the right (last dimension)
	offset := len(shape) - len(a.shape)
	strides := make([]int, len(shape))
	for i := range a.shape {
		aDim := a.shape[i]
		newDim := shape[offset+i]
		switch {
		case aDim == newDim:
			strides[offset+i] = a.stride[i]
		case aDim == 1:
			strides[offset+i] = 0 // Broadcast dimension
		default:
			return nil, fmt.Errorf("%w: cannot broadcast %v to %v (dimension %d: %d vs %d)",
				ErrShapeMismatch, a.shape, shape, offset+i, aDim, newDim)
		}
	}

	return &Array{
		buffer:   a.buffer,
		shape:    shape.Clone(),
		stride:   strides,
		dtype:    a.dtype,
		offset:   a.offset,
		readOnly: true,
	}, nil
}

// BroadcastAll broadcasts every array to their common shape.
// The result holds one read-only view per input, in input order.
// Callers must not rely on the views having independent storage.
func BroadcastAll(arrays ...*Array) ([]*Array, error) {
	shapes := lo.Map(arrays, func(a *Array, _ int) Shape { return a.shape })
	bc, err := BroadcastShapes(shapes...)
	if err != nil {
		return nil, err
	}

	views := make([]*Array, len(arrays))
	for i, a := range arrays {
		if views[i], err = BroadcastTo(a, bc); err != nil {
			return nil, err
		}
	}
	return views, nil
}

// BroadcastAllOptional is BroadcastAll with holes: nil entries take no part in
// resolving the common shape and come back as nil in the same position.
func BroadcastAllOptional(arrays ...*Array) ([]*Array, error) {
	present := lo.Filter(arrays, func(a *Array, _ int) bool { return a != nil })
	views, err := BroadcastAll(present...)
	if err != nil {
		return nil, err
	}

	result := make([]*Array, len(arrays))
	next := 0
	for i, a := range arrays {
		if a == nil {
			continue
		}
		result[i] = views[next]
		next++
	}
	return result, nil
}
