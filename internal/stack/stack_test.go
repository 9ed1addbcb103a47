package stack

import (
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IanAMacMillan/wavestate-utilities/internal/tensor"
)

func linspace(start, end float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + (end-start)*float64(i)/float64(n-1)
	}
	return out
}

// TestMatrixHeterogeneous stacks a (10,) vector with scalars into (10, 2, 2).
func TestMatrixHeterogeneous(t *testing.T) {
	x := tensor.Vector(linspace(1, 10, 10))

	m, err := Matrix([][]any{
		{x, 0},
		{2, x},
	})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{10, 2, 2}, m.Shape())
	assert.Equal(t, tensor.Float64, m.DType())
	for k := 0; k < 10; k++ {
		assert.Equal(t, float64(k+1), m.At(k, 0, 0))
		assert.Equal(t, 0.0, m.At(k, 0, 1))
		assert.Equal(t, 2.0, m.At(k, 1, 0))
		assert.Equal(t, float64(k+1), m.At(k, 1, 1))
	}
}

func TestMatrixBroadcastsAcrossElements(t *testing.T) {
	col, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3, 1})
	require.NoError(t, err)
	row := tensor.Vector([]float32{10, 20})

	m, err := Matrix([][]any{
		{col, row},
		{float32(0), col},
	})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{3, 2, 2, 2}, m.Shape())
	assert.Equal(t, tensor.Float32, m.DType())
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, float32(i+1), m.At(i, j, 0, 0))
			assert.Equal(t, float32(10*(j+1)), m.At(i, j, 0, 1))
			assert.Equal(t, float32(0), m.At(i, j, 1, 0))
			assert.Equal(t, float32(i+1), m.At(i, j, 1, 1))
		}
	}
}

// TestMatrixScalarsDegenerate checks that scalar-only input gives the plain
// R x C array with no leading axis.
func TestMatrixScalarsDegenerate(t *testing.T) {
	m, err := Matrix([][]any{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 3}, m.Shape())
	assert.Equal(t, tensor.Int64, m.DType())
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, tensor.Values[int64](m))
}

func TestMatrixSingleScalar(t *testing.T) {
	m, err := Matrix([][]any{{2.5}})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 1}, m.Shape())
	assert.Equal(t, 2.5, m.At(0, 0))
}

func TestMatrixSingletonBroadcastAxisKept(t *testing.T) {
	// A (1,)-shaped element is not a scalar: B is (1,), not ().
	m, err := Matrix([][]any{{[]float64{4}, 1}})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 1, 2}, m.Shape())
}

func TestMatrixDTypePromotion(t *testing.T) {
	tests := []struct {
		name  string
		rows  [][]any
		dtype tensor.DataType
	}{
		{"bool and uint8", [][]any{{true, uint8(2)}}, tensor.Uint8},
		{"int32 and float32", [][]any{{int32(1), float32(2)}}, tensor.Float64},
		{"uint8 and float32", [][]any{{uint8(1), float32(2)}}, tensor.Float32},
		{"float and complex", [][]any{{1.0}, {complex64(1i)}}, tensor.Complex128},
		{"float32 and complex64", [][]any{{float32(1)}, {complex64(1i)}}, tensor.Complex64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Matrix(tt.rows)
			require.NoError(t, err)
			assert.Equal(t, tt.dtype, m.DType())
		})
	}
}

func TestMatrixComplexValues(t *testing.T) {
	x := tensor.Vector([]complex128{1 + 1i, 2 - 1i})

	m, err := Matrix([][]any{{x, 1.5}})
	require.NoError(t, err)
	assert.Equal(t, tensor.Complex128, m.DType())
	assert.Equal(t, []complex128{1 + 1i, 1.5, 2 - 1i, 1.5}, tensor.Values[complex128](m))
}

func TestMatrixDTypeOverride(t *testing.T) {
	m, err := Matrix([][]any{
		{1, 2},
		{3, 4},
	}, WithDType(tensor.Float64))
	require.NoError(t, err)
	assert.Equal(t, tensor.Float64, m.DType())
	assert.Equal(t, []float64{1, 2, 3, 4}, tensor.Values[float64](m))

	// Narrowing overrides truncate.
	m, err = Matrix([][]any{{1.9, tensor.Vector([]float64{-2.7, 3.1})}}, WithDType(tensor.Int32))
	require.NoError(t, err)
	assert.Equal(t, tensor.Int32, m.DType())
	assert.Equal(t, []int32{1, -2, 1, 3}, tensor.Values[int32](m))
}

func TestMatrixRaggedBeforeBroadcast(t *testing.T) {
	// The rows are ragged and their elements cannot broadcast; ragged wins.
	_, err := Matrix([][]any{
		{[]float64{1, 2, 3}, 0},
		{[]float64{1, 2, 3, 4}, 0, 1},
	})
	require.ErrorIs(t, err, ErrRaggedInput)
	assert.NotErrorIs(t, err, tensor.ErrShapeMismatch)

	// Unsupported elements are not looked at either.
	_, err = Matrix([][]any{{"a", "b"}, {"c"}})
	require.ErrorIs(t, err, ErrRaggedInput)
}

func TestMatrixShapeMismatch(t *testing.T) {
	_, err := Matrix([][]any{
		{[]float64{1, 2, 3}, 0},
		{0, []float64{1, 2, 3, 4}},
	})
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestMatrixEmpty(t *testing.T) {
	_, err := Matrix(nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Matrix([][]any{{}, {}})
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Matrix([][]any{}, WithDType(tensor.Float64))
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestMatrixUnsupportedElement(t *testing.T) {
	_, err := Matrix([][]any{{1, "two"}})
	require.ErrorIs(t, err, tensor.ErrUnsupportedElement)
	assert.Contains(t, err.Error(), "element (0, 1)")
}

func TestMatrixDoesNotMutateOrAlias(t *testing.T) {
	x := tensor.Vector([]float64{1, 2, 3})

	m, err := Matrix([][]any{{x, x}})
	require.NoError(t, err)
	assert.False(t, m.SharesMemory(x))

	m.Set(99.0, 0, 0, 0)
	assert.Equal(t, []float64{1, 2, 3}, tensor.Values[float64](x))
}

func TestVector(t *testing.T) {
	a := tensor.Vector([]float64{1, 2, 3})
	b := int32(7)
	c, err := tensor.FromSlice([]float64{10, 20}, tensor.Shape{2, 1})
	require.NoError(t, err)

	v, err := Vector([]any{a, b, c})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3, 3}, v.Shape())
	assert.Equal(t, tensor.Float64, v.DType())

	// out[..., i] equals item i broadcast to the leading shape.
	lead := tensor.Shape{2, 3}
	for i, item := range []any{a, b, c} {
		src, err := tensor.AsArray(item)
		require.NoError(t, err)
		want, err := tensor.BroadcastTo(src, lead)
		require.NoError(t, err)

		for p := 0; p < 2; p++ {
			for q := 0; q < 3; q++ {
				assert.Equal(t, tensor.Value[float64](want, p, q), v.At(p, q, i), "item %d at (%d, %d)", i, p, q)
			}
		}
	}
}

func TestVectorScalarsDegenerate(t *testing.T) {
	v, err := Vector([]any{1.0, 2, uint8(3)})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3}, v.Shape())
	assert.Equal(t, []float64{1, 2, 3}, tensor.Values[float64](v))
}

func TestVectorDTypeOverride(t *testing.T) {
	v, err := Vector([]any{1, 2}, WithDType(tensor.Complex64))
	require.NoError(t, err)
	assert.Equal(t, tensor.Complex64, v.DType())
	assert.Equal(t, []complex64{1, 2}, tensor.Values[complex64](v))
}

func TestVectorErrors(t *testing.T) {
	_, err := Vector(nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Vector([]any{[]float64{1, 2, 3}, []float64{1, 2, 3, 4}})
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = Vector([]any{1, struct{}{}})
	require.ErrorIs(t, err, tensor.ErrUnsupportedElement)
	assert.Contains(t, err.Error(), "element 1")
}

func TestIdentity(t *testing.T) {
	a := tensor.Vector([]float64{1, 2, 3})
	b := 5.0

	m, err := Identity([]any{a, b})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2, 2}, m.Shape())
	assert.Equal(t, tensor.Float64, m.DType())

	for k := 0; k < 3; k++ {
		assert.Equal(t, float64(k+1), m.At(k, 0, 0))
		assert.Equal(t, 5.0, m.At(k, 1, 1))
		assert.Equal(t, 0.0, m.At(k, 0, 1))
		assert.Equal(t, 0.0, m.At(k, 1, 0))
	}
}

func TestIdentityScalars(t *testing.T) {
	m, err := Identity([]any{int32(1), int32(2), int32(3)})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 3}, m.Shape())
	// The off-diagonal zeros are int64.
	assert.Equal(t, tensor.Int64, m.DType())
	assert.Equal(t, []int64{1, 0, 0, 0, 2, 0, 0, 0, 3}, tensor.Values[int64](m))
}

func TestIdentityOptions(t *testing.T) {
	m, err := Identity([]any{float32(1), float32(2)}, WithDType(tensor.Float32))
	require.NoError(t, err)
	assert.Equal(t, tensor.Float32, m.DType())
	assert.Equal(t, []float32{1, 0, 0, 2}, tensor.Values[float32](m))
}

func TestIdentityEmpty(t *testing.T) {
	_, err := Identity(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestLogger(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	_, err := Vector([]any{[]float64{1, 2}, 3}, WithLogger(logger))
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.True(t, strings.Contains(lines[0], `"msg"="stacked elements"`), lines[0])
	assert.Contains(t, lines[0], `"dtype"="float64"`)
	assert.Contains(t, lines[0], `"shape"=[2,2]`)

	// Below V(1) nothing is logged.
	lines = nil
	quiet := funcr.New(func(_, args string) { lines = append(lines, args) }, funcr.Options{})
	_, err = Vector([]any{1}, WithLogger(quiet))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestUnravel(t *testing.T) {
	coords := make([]int, 2)
	unravel(5, tensor.Shape{2, 3}, coords)
	assert.Equal(t, []int{1, 2}, coords)

	unravel(0, tensor.Shape{2, 3}, coords)
	assert.Equal(t, []int{0, 0}, coords)

	one := make([]int, 1)
	unravel(4, tensor.Shape{7}, one)
	assert.Equal(t, []int{4}, one)
}
