package tensor

import "errors"

// Sentinel errors returned by this package. Callers match them with errors.Is;
// the returned errors wrap them with the offending shapes or values.
var (
	// ErrShapeMismatch is returned when shapes cannot be unified under
	// broadcasting rules.
	ErrShapeMismatch = errors.New("tensor: shapes not compatible for broadcasting")

	// ErrInvalidShape is returned for shapes with negative dimensions.
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrSizeMismatch is returned when a data slice does not fill its shape.
	ErrSizeMismatch = errors.New("tensor: data length does not match shape")

	// ErrUnsupportedElement is returned by AsArray for values it cannot
	// represent as an array.
	ErrUnsupportedElement = errors.New("tensor: unsupported element")

	// ErrReadOnly is returned when assigning into a broadcast view.
	ErrReadOnly = errors.New("tensor: assignment destination is read-only")
)
