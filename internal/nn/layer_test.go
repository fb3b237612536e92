package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/compute"
	"github.com/ember-ml/ember/internal/tensor"
)

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// TestFullyConnected_Forward checks z = x.W + b and the sigmoid activation
// against hand-computed values, plus the explicit result buffers.
func TestFullyConnected_Forward(t *testing.T) {
	eng := compute.New()

	weights, err := tensor.FromSlice([]float64{
		1, 0, 2,
		0, 1, -1,
	}, 2, 3)
	require.NoError(t, err)
	biases := tensor.Vector{0.5, -0.5, 0}

	layer, err := NewFullyConnectedFrom(weights, biases, eng)
	require.NoError(t, err)
	assert.Equal(t, FullyConnected, layer.Kind())
	assert.Equal(t, 2, layer.InputSize())
	assert.Equal(t, 3, layer.OutputSize())

	x, err := tensor.FromSlice([]float64{1, 2}, 1, 2)
	require.NoError(t, err)

	res, err := layer.Forward(tensor.Volume{x})
	require.NoError(t, err)

	// z = [1*1+2*0+0.5, 1*0+2*1-0.5, 1*2+2*(-1)+0] = [1.5, 1.5, 0]
	z := res.PreActivation[0]
	assert.InDelta(t, 1.5, z.At(0, 0), 1e-12)
	assert.InDelta(t, 1.5, z.At(0, 1), 1e-12)
	assert.InDelta(t, 0.0, z.At(0, 2), 1e-12)

	a := res.Output[0]
	assert.InDelta(t, sigmoid(1.5), a.At(0, 0), 1e-12)
	assert.InDelta(t, 0.5, a.At(0, 2), 1e-12)

	// The input buffer is handed back untouched.
	assert.True(t, x.Equal(res.Input[0]))

	// The same result is cached for the backward collaborator.
	assert.Same(t, res, layer.Last())
}

// TestFullyConnected_BatchBias broadcasts the bias across every batch row.
func TestFullyConnected_BatchBias(t *testing.T) {
	eng := compute.New()

	weights, err := tensor.FromSlice([]float64{1, 1}, 1, 2)
	require.NoError(t, err)
	layer, err := NewFullyConnectedFrom(weights, tensor.Vector{1, -1}, eng)
	require.NoError(t, err)

	x, err := tensor.FromSlice([]float64{0, 2, 4}, 3, 1)
	require.NoError(t, err)

	res, err := layer.Forward(tensor.Volume{x})
	require.NoError(t, err)

	z := res.PreActivation[0]
	require.Equal(t, 3, z.Rows())
	for i, want := range []float64{1, 3, 5} {
		assert.InDelta(t, want, z.At(i, 0), 1e-12)
		assert.InDelta(t, want-2, z.At(i, 1), 1e-12)
	}
}

// TestSoftmax_ForwardDistribution checks the output rows are probability
// distributions.
func TestSoftmax_ForwardDistribution(t *testing.T) {
	eng := compute.New()

	layer, err := NewSoftmax(4, 3, eng)
	require.NoError(t, err)

	x, err := tensor.FromSlice([]float64{0.1, -0.2, 0.3, 0.4}, 1, 4)
	require.NoError(t, err)

	res, err := layer.Forward(tensor.Volume{x})
	require.NoError(t, err)

	row := res.Output[0].Row(0)
	sum := 0.0
	for _, v := range row {
		assert.Positive(t, v)
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

// TestDense_FlattensVolume feeds a multi-channel volume through a dense layer
// and checks the channel-major flatten path.
func TestDense_FlattensVolume(t *testing.T) {
	eng := compute.New()

	// Identity weights make z equal to the flattened input.
	weights, err := tensor.NewMatrix(8, 8)
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		weights.Set(i, i, 1)
	}
	layer, err := NewFullyConnectedFrom(weights, tensor.NewVector(8), eng)
	require.NoError(t, err)

	a, err := tensor.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float64{5, 6, 7, 8}, 2, 2)
	require.NoError(t, err)
	vol, err := tensor.NewVolume(a, b)
	require.NoError(t, err)

	res, err := layer.Forward(vol)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, res.PreActivation[0].Data())
}

// TestDense_InputSizeMismatch fails fast when the volume does not flatten to
// the layer's input width.
func TestDense_InputSizeMismatch(t *testing.T) {
	eng := compute.New()

	layer, err := NewFullyConnected(10, 4, eng)
	require.NoError(t, err)

	x, err := tensor.NewMatrix(3, 3)
	require.NoError(t, err)

	_, err = layer.Forward(tensor.Volume{x})
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}

// TestConvolutional_Forward applies every kernel to every channel with ReLU.
func TestConvolutional_Forward(t *testing.T) {
	eng := compute.New()

	k1, err := tensor.Full(3, 3, 1)
	require.NoError(t, err)
	k2, err := tensor.FromSlice([]float64{
		0, 0, 0,
		0, -1, 0,
		0, 0, 0,
	}, 3, 3)
	require.NoError(t, err)

	layer, err := NewConvolutional([]*tensor.Matrix{k1, k2}, eng)
	require.NoError(t, err)
	assert.Equal(t, Convolutional, layer.Kind())

	ch, err := tensor.Full(4, 4, 2)
	require.NoError(t, err)

	res, err := layer.Forward(tensor.Volume{ch})
	require.NoError(t, err)

	require.Equal(t, 2, res.Output.Depth())
	rows, cols := res.Output.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)

	// Averaging kernel keeps the constant 2; the negating kernel goes to -2
	// pre-activation and clamps to 0 after ReLU.
	assert.InDelta(t, 2.0, res.Output[0].At(0, 0), 1e-12)
	assert.InDelta(t, -2.0, res.PreActivation[1].At(0, 0), 1e-12)
	assert.Equal(t, 0.0, res.Output[1].At(0, 0))
}

// TestMaxPoolLayer_Forward pools each channel independently.
func TestMaxPoolLayer_Forward(t *testing.T) {
	eng := compute.New()
	layer := NewMaxPool(eng)

	a, err := tensor.FromSlice([]float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}, 4, 4)
	require.NoError(t, err)
	b, err := tensor.Full(4, 4, 1)
	require.NoError(t, err)
	vol, err := tensor.NewVolume(a, b)
	require.NoError(t, err)

	res, err := layer.Forward(vol)
	require.NoError(t, err)

	require.Equal(t, 2, res.Output.Depth())
	assert.Equal(t, []float64{6, 8, 14, 16}, res.Output[0].Data())
	assert.Equal(t, []float64{1, 1, 1, 1}, res.Output[1].Data())
}

// TestForward_OverwritesCache verifies Ready -> Ready transitions replace the
// cached result on every call.
func TestForward_OverwritesCache(t *testing.T) {
	eng := compute.New()

	layer, err := NewFullyConnected(2, 2, eng)
	require.NoError(t, err)
	assert.Nil(t, layer.Last())

	x, err := tensor.FromSlice([]float64{1, 2}, 1, 2)
	require.NoError(t, err)

	first, err := layer.Forward(tensor.Volume{x})
	require.NoError(t, err)
	second, err := layer.Forward(tensor.Volume{x})
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Same(t, second, layer.Last())
}

// TestConstructor_Validation covers construction edge cases.
func TestConstructor_Validation(t *testing.T) {
	eng := compute.New()

	_, err := NewFullyConnected(0, 4, eng)
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)

	_, err = NewConvolutional(nil, eng)
	assert.ErrorIs(t, err, tensor.ErrKernelSize)

	bad, err := tensor.NewMatrix(2, 2)
	require.NoError(t, err)
	_, err = NewConvolutional([]*tensor.Matrix{bad}, eng)
	assert.ErrorIs(t, err, tensor.ErrKernelSize)

	w, err := tensor.NewMatrix(4, 3)
	require.NoError(t, err)
	_, err = NewSoftmaxFrom(w, tensor.NewVector(2), eng)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}

// TestLayer_WeightAccessors exposes the buffers the external optimizer reads.
func TestLayer_WeightAccessors(t *testing.T) {
	eng := compute.New()

	w, err := tensor.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	b := tensor.Vector{5, 6}

	layer, err := NewSoftmaxFrom(w, b, eng)
	require.NoError(t, err)

	assert.Same(t, w, layer.Weights())
	assert.Equal(t, b, layer.Biases())
	assert.Equal(t, "Softmax", layer.Kind().String())
}
