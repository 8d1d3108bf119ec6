// Package ndarray_test contains unit tests for the flat-array casts used by
// record validation.
package ndarray_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/qcwire/ndarray"
	"github.com/stretchr/testify/require"
)

// TestReshapeInvalidDimensions ensures Reshape rejects non-positive shapes.
func TestReshapeInvalidDimensions(t *testing.T) {
	_, err := ndarray.Reshape([]float64{1}, 0, 5)
	require.ErrorIs(t, err, ndarray.ErrInvalidDimensions)

	_, err = ndarray.Reshape([]float64{1}, 5, -1)
	require.ErrorIs(t, err, ndarray.ErrInvalidDimensions)
}

// TestReshapeNotCastable ensures a length/shape mismatch fails with the shape
// spelled out in the message.
func TestReshapeNotCastable(t *testing.T) {
	_, err := ndarray.Reshape(make([]float64, 4), 8, 8)
	require.ErrorIs(t, err, ndarray.ErrNotCastable)
	require.ErrorContains(t, err, "not castable to shape (8, 8)")
	require.ErrorContains(t, err, "length 4")
}

// TestReshapeLayout verifies row-major element placement.
func TestReshapeLayout(t *testing.T) {
	m, err := ndarray.Reshape([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfBounds)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfBounds)
}

// TestReshapeCopies verifies the constructor takes a defensive copy.
func TestReshapeCopies(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	m, err := ndarray.Reshape(src, 2, 2)
	require.NoError(t, err)

	src[0] = 99 // mutate the input after construction
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	flat := m.Flatten()
	flat[3] = -7 // mutate the exported copy
	v, err = m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
}

// TestAsVector covers the exact-length vector cast and its error rendering.
func TestAsVector(t *testing.T) {
	got, err := ndarray.AsVector([]float64{1, 2, 3}, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, got)

	_, err = ndarray.AsVector([]float64{1, 2, 3}, 8)
	require.ErrorIs(t, err, ndarray.ErrNotCastable)
	require.ErrorContains(t, err, "not castable to shape (8,)")

	_, err = ndarray.AsVector(nil, 0)
	require.ErrorIs(t, err, ndarray.ErrInvalidDimensions)
}

// TestMatrixEqual exercises shape and element comparisons, including nils.
func TestMatrixEqual(t *testing.T) {
	a, err := ndarray.Reshape([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	b, err := ndarray.Reshape([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	c, err := ndarray.Reshape([]float64{1, 2, 3, 4}, 4, 1)
	require.NoError(t, err)
	d, err := ndarray.Reshape([]float64{1, 2, 3, 5}, 2, 2)
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(d))
	require.False(t, a.Equal(nil))

	var nilM *ndarray.Matrix
	require.True(t, nilM.Equal(nil))
}

// TestMatrixMarshalJSON verifies the wire form is the flat row-major list.
func TestMatrixMarshalJSON(t *testing.T) {
	m, err := ndarray.Reshape([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	require.JSONEq(t, `[1,2,3,4]`, string(out))
}
