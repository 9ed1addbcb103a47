// Package tensor provides the core array types and broadcasting rules for wavestate utilities.
package tensor

// DType is a constraint for supported element types.
// It uses Go generics to keep typed accessors compile-time safe.
type DType interface {
	~bool | ~uint8 | ~int32 | ~int64 | ~float32 | ~float64 | ~complex64 | ~complex128
}

// DataType represents runtime type information for arrays.
type DataType int

// Supported data types for arrays.
const (
	Bool DataType = iota
	Uint8
	Int32
	Int64
	Float32
	Float64
	Complex64
	Complex128
)

// Kind groups data types into the promotion lattice
// bool < unsigned < signed < float < complex.
type Kind int

// Data type kinds, ordered by promotion rank.
const (
	KindBool Kind = iota
	KindUnsigned
	KindSigned
	KindFloat
	KindComplex
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Uint8:
		return 1
	case Int32, Float32:
		return 4
	case Int64, Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// Kind returns the promotion class of the data type.
func (dt DataType) Kind() Kind {
	switch dt {
	case Bool:
		return KindBool
	case Uint8:
		return KindUnsigned
	case Int32, Int64:
		return KindSigned
	case Float32, Float64:
		return KindFloat
	case Complex64, Complex128:
		return KindComplex
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Uint8:
		return "uint8"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// floatBits is the float component width needed to hold every value of dt
// without losing magnitude: 32 for small integers and single precision,
// 64 otherwise. Bool needs nothing.
func (dt DataType) floatBits() int {
	switch dt {
	case Bool:
		return 0
	case Uint8, Float32, Complex64:
		return 32
	default:
		return 64
	}
}

// PromoteTypes returns the smallest data type both a and b can be safely
// converted to.
//
// Rules:
//  1. bool is absorbed by any other type
//  2. integers widen: uint8 < int32 < int64
//  3. integer with float gives the narrowest float that holds the integer
//     and is at least as wide as the float operand
//  4. anything with complex gives the complex whose components cover both
//
// Examples:
//
//	uint8   + float32   → float32
//	int32   + float32   → float64
//	float64 + complex64 → complex128
//	bool    + int32     → int32
func PromoteTypes(a, b DataType) DataType {
	if a == b {
		return a
	}

	ka, kb := a.Kind(), b.Kind()
	kind := max(ka, kb)
	switch kind {
	case KindBool:
		return Bool
	case KindUnsigned, KindSigned:
		return max(a, b)
	}

	bits := max(a.floatBits(), b.floatBits())
	if kind == KindComplex {
		if bits <= 32 {
			return Complex64
		}
		return Complex128
	}
	if bits <= 32 {
		return Float32
	}
	return Float64
}

// ResultType folds PromoteTypes over dtypes.
// Panics when called with no data types.
func ResultType(dtypes ...DataType) DataType {
	if len(dtypes) == 0 {
		panic("result type: at least one data type required")
	}
	result := dtypes[0]
	for _, dt := range dtypes[1:] {
		result = PromoteTypes(result, dt)
	}
	return result
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case bool:
		return Bool
	case uint8:
		return Uint8
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		panic("unsupported type")
	}
}
