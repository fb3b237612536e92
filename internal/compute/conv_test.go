package compute

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/tensor"
)

// TestConvolve_Shrinkage checks the (H, W) -> (H-2, W-2) output extents.
func TestConvolve_Shrinkage(t *testing.T) {
	eng := New()

	in, err := tensor.NewMatrix(5, 5)
	require.NoError(t, err)
	kernel, err := tensor.Full(3, 3, 1)
	require.NoError(t, err)

	out, err := eng.Convolve(in, kernel)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Rows())
	assert.Equal(t, 3, out.Cols())
}

// TestConvolve_KnownValues checks cross-correlation with L1 normalization.
func TestConvolve_KnownValues(t *testing.T) {
	eng := New()

	in, err := tensor.FromSlice([]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, 3, 3)
	require.NoError(t, err)

	// L1 norm is 2; the single window sums 1*1 + 9*(-1) = -8.
	kernel, err := tensor.FromSlice([]float64{
		1, 0, 0,
		0, 0, 0,
		0, 0, -1,
	}, 3, 3)
	require.NoError(t, err)

	out, err := eng.Convolve(in, kernel)
	require.NoError(t, err)
	require.Equal(t, 1, out.NumElements())
	assert.InDelta(t, -4.0, out.At(0, 0), 1e-12)
}

// TestConvolve_UniformKernelAverages checks that an all-ones kernel produces
// the window mean (L1 norm equals the element count).
func TestConvolve_UniformKernelAverages(t *testing.T) {
	eng := New()

	in, err := tensor.Full(4, 4, 3)
	require.NoError(t, err)
	kernel, err := tensor.Full(3, 3, 1)
	require.NoError(t, err)

	out, err := eng.Convolve(in, kernel)
	require.NoError(t, err)
	for _, v := range out.Data() {
		assert.InDelta(t, 3.0, v, 1e-12)
	}
}

// TestConvolve_KernelSizeError rejects non-3x3 kernels.
func TestConvolve_KernelSizeError(t *testing.T) {
	eng := New()

	in, err := tensor.NewMatrix(5, 5)
	require.NoError(t, err)
	kernel, err := tensor.NewMatrix(2, 2)
	require.NoError(t, err)

	_, err = eng.Convolve(in, kernel)
	assert.ErrorIs(t, err, tensor.ErrKernelSize)
}

// TestConvolve_InputTooSmall rejects inputs under 3x3.
func TestConvolve_InputTooSmall(t *testing.T) {
	eng := New()

	in, err := tensor.NewMatrix(2, 2)
	require.NoError(t, err)
	kernel, err := tensor.NewMatrix(3, 3)
	require.NoError(t, err)

	_, err = eng.Convolve(in, kernel)
	assert.ErrorIs(t, err, tensor.ErrInputTooSmall)
}

// TestConvolve_ZeroKernelPropagates lets the degenerate all-zero kernel
// produce non-finite values instead of failing.
func TestConvolve_ZeroKernelPropagates(t *testing.T) {
	eng := New()

	in, err := tensor.Full(3, 3, 1)
	require.NoError(t, err)
	kernel, err := tensor.NewMatrix(3, 3)
	require.NoError(t, err)

	out, err := eng.Convolve(in, kernel)
	require.NoError(t, err)
	v := out.At(0, 0)
	assert.True(t, math.IsNaN(v) || math.IsInf(v, 0))
}
