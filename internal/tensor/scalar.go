package tensor

import (
	"fmt"
	"math"
)

// scalar holds one element independent of its storage type.
// Integers and bools keep exact int64 values; floats live in the real part
// of c so that float and complex conversions share one path.
type scalar struct {
	kind Kind
	i    int64
	c    complex128
}

func boolScalar(b bool) scalar {
	if b {
		return scalar{kind: KindBool, i: 1}
	}
	return scalar{kind: KindBool}
}

func intScalar(i int64) scalar {
	return scalar{kind: KindSigned, i: i}
}

func floatScalar(f float64) scalar {
	return scalar{kind: KindFloat, c: complex(f, 0)}
}

func complexScalar(c complex128) scalar {
	return scalar{kind: KindComplex, c: c}
}

func (s scalar) exact() bool {
	return s.kind <= KindSigned
}

func (s scalar) asBool() bool {
	if s.exact() {
		return s.i != 0
	}
	return s.c != 0
}

// asInt64 truncates toward zero; the imaginary part is discarded.
func (s scalar) asInt64() int64 {
	if s.exact() {
		return s.i
	}
	f := real(s.c)
	if math.IsNaN(f) {
		return math.MinInt64
	}
	return int64(f)
}

// asFloat64 discards the imaginary part.
func (s scalar) asFloat64() float64 {
	if s.exact() {
		return float64(s.i)
	}
	return real(s.c)
}

func (s scalar) asComplex128() complex128 {
	if s.exact() {
		return complex(float64(s.i), 0)
	}
	return s.c
}

// native converts s to the Go type that stores dtype.
func (s scalar) native(dtype DataType) any {
	switch dtype {
	case Bool:
		return s.asBool()
	case Uint8:
		return uint8(s.asInt64()) //nolint:gosec // G115: truncation follows C cast semantics
	case Int32:
		return int32(s.asInt64()) //nolint:gosec // G115: truncation follows C cast semantics
	case Int64:
		return s.asInt64()
	case Float32:
		return float32(s.asFloat64())
	case Float64:
		return s.asFloat64()
	case Complex64:
		return complex64(s.asComplex128())
	case Complex128:
		return s.asComplex128()
	default:
		panic(fmt.Sprintf("unsupported dtype %v", dtype))
	}
}

// scalarAs converts s to T.
func scalarAs[T DType](s scalar) T {
	var dummy T
	return s.native(inferDataType(dummy)).(T)
}

// scalarOf converts a Go scalar value to a scalar.
func scalarOf(value any) (scalar, error) {
	arr, err := AsArray(value)
	if err != nil {
		return scalar{}, err
	}
	if arr.NDim() != 0 {
		return scalar{}, fmt.Errorf("%w: %T is not a scalar", ErrUnsupportedElement, value)
	}
	return arr.load(arr.offset), nil
}
