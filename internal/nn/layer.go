// Package nn implements the layer forward contract on top of the Ember
// compute kernels. A layer is a closed set of tagged variants dispatched
// through a single Forward operation; there is no interface hierarchy.
package nn

import (
	"fmt"

	"github.com/ember-ml/ember/internal/compute"
	"github.com/ember-ml/ember/internal/tensor"
)

// Kind identifies a layer variant.
type Kind int

// Layer variants.
const (
	FullyConnected Kind = iota
	Softmax
	Convolutional
	MaxPool
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case FullyConnected:
		return "FullyConnected"
	case Softmax:
		return "Softmax"
	case Convolutional:
		return "Convolutional"
	case MaxPool:
		return "MaxPool"
	default:
		return "Unknown"
	}
}

// ForwardResult carries the three buffers a forward call produces: the input
// it consumed, the pre-activation sum and the post-activation output. The
// backward-pass collaborator receives these as an explicit argument rather
// than reading hidden layer state.
type ForwardResult struct {
	Input         tensor.Volume
	PreActivation tensor.Volume
	Output        tensor.Volume
}

// Layer is a single network layer. The dense kinds (FullyConnected, Softmax)
// own a weights matrix of shape inputSize x outputSize and a biases vector of
// length outputSize; the Convolutional kind owns a set of 3x3 kernels;
// MaxPool owns no parameters.
//
// A layer is Ready from construction. Each Forward call overwrites the cached
// last result; there is no terminal state beyond object lifetime.
type Layer struct {
	kind       Kind
	inputSize  int
	outputSize int
	weights    *tensor.Matrix // inputSize x outputSize, dense kinds only
	biases     tensor.Vector  // outputSize, dense kinds only
	kernels    []*tensor.Matrix
	eng        *compute.Engine
	last       *ForwardResult
}

// NewFullyConnected creates a sigmoid-activated dense layer with
// Xavier-initialized weights and zero biases.
func NewFullyConnected(inputSize, outputSize int, eng *compute.Engine) (*Layer, error) {
	return newDense(FullyConnected, inputSize, outputSize, eng)
}

// NewSoftmax creates a softmax output layer with Xavier-initialized weights
// and zero biases.
//
// Example:
//
//	eng := compute.New()
//	out, err := nn.NewSoftmax(128, 10, eng)
func NewSoftmax(inputSize, outputSize int, eng *compute.Engine) (*Layer, error) {
	return newDense(Softmax, inputSize, outputSize, eng)
}

func newDense(kind Kind, inputSize, outputSize int, eng *compute.Engine) (*Layer, error) {
	if inputSize <= 0 || outputSize <= 0 {
		return nil, fmt.Errorf("%w: layer sizes %dx%d", tensor.ErrInvalidShape, inputSize, outputSize)
	}
	weights, err := xavier(inputSize, outputSize)
	if err != nil {
		return nil, err
	}
	return &Layer{
		kind:       kind,
		inputSize:  inputSize,
		outputSize: outputSize,
		weights:    weights,
		biases:     tensor.NewVector(outputSize),
		eng:        eng,
	}, nil
}

// NewFullyConnectedFrom creates a dense layer from caller-supplied weights
// (inputSize x outputSize) and biases (length outputSize). Together with the
// layer kind these are the four logical fields a serialized layer is
// reconstructed from.
func NewFullyConnectedFrom(weights *tensor.Matrix, biases tensor.Vector, eng *compute.Engine) (*Layer, error) {
	return newDenseFrom(FullyConnected, weights, biases, eng)
}

// NewSoftmaxFrom creates a softmax layer from caller-supplied weights and biases.
func NewSoftmaxFrom(weights *tensor.Matrix, biases tensor.Vector, eng *compute.Engine) (*Layer, error) {
	return newDenseFrom(Softmax, weights, biases, eng)
}

func newDenseFrom(kind Kind, weights *tensor.Matrix, biases tensor.Vector, eng *compute.Engine) (*Layer, error) {
	if len(biases) != weights.Cols() {
		return nil, fmt.Errorf("%w: %d biases for %s weights",
			tensor.ErrDimensionMismatch, len(biases), weights)
	}
	return &Layer{
		kind:       kind,
		inputSize:  weights.Rows(),
		outputSize: weights.Cols(),
		weights:    weights,
		biases:     biases,
		eng:        eng,
	}, nil
}

// NewConvolutional creates a ReLU-activated convolution layer applying each
// of the given 3x3 kernels to every input channel.
func NewConvolutional(kernels []*tensor.Matrix, eng *compute.Engine) (*Layer, error) {
	if len(kernels) == 0 {
		return nil, fmt.Errorf("%w: convolutional layer needs at least one kernel", tensor.ErrKernelSize)
	}
	for _, k := range kernels {
		if kh, kw := k.Dims(); kh != 3 || kw != 3 {
			return nil, fmt.Errorf("%w: got %dx%d", tensor.ErrKernelSize, kh, kw)
		}
	}
	return &Layer{kind: Convolutional, kernels: kernels, eng: eng}, nil
}

// NewMaxPool creates a 2x2 stride-2 pooling layer.
func NewMaxPool(eng *compute.Engine) *Layer {
	return &Layer{kind: MaxPool, eng: eng}
}

// Kind returns the layer variant.
func (l *Layer) Kind() Kind { return l.kind }

// InputSize returns the dense input width (0 for conv/pool kinds).
func (l *Layer) InputSize() int { return l.inputSize }

// OutputSize returns the dense output width (0 for conv/pool kinds).
func (l *Layer) OutputSize() int { return l.outputSize }

// Weights returns the dense weights buffer, read-only by convention.
// Consumed by the external optimizer/backward pass.
func (l *Layer) Weights() *tensor.Matrix { return l.weights }

// Biases returns the dense biases buffer, read-only by convention.
func (l *Layer) Biases() tensor.Vector { return l.biases }

// Kernels returns the convolution kernels (nil for other kinds).
func (l *Layer) Kernels() []*tensor.Matrix { return l.kernels }

// Last returns the result of the most recent Forward call, or nil before the
// first call. Each Forward overwrites it.
func (l *Layer) Last() *ForwardResult { return l.last }

// Forward runs one forward step and returns the input, pre-activation and
// post-activation buffers. The same result is cached for Last.
//
// Dense kinds flatten the incoming volume to a row vector when its depth or
// extents do not already form a [batch, inputSize] matrix, compute
// z = x.W + b with the bias broadcast across rows, then apply the kind's
// activation. Convolutional applies every kernel to every channel followed by
// ReLU; MaxPool pools each channel.
func (l *Layer) Forward(in tensor.Volume) (*ForwardResult, error) {
	if in.Depth() == 0 {
		return nil, tensor.ErrEmptyVolume
	}

	var res *ForwardResult
	var err error
	switch l.kind {
	case FullyConnected, Softmax:
		res, err = l.forwardDense(in)
	case Convolutional:
		res, err = l.forwardConv(in)
	case MaxPool:
		res, err = l.forwardPool(in)
	default:
		err = fmt.Errorf("nn: unknown layer kind %d", l.kind)
	}
	if err != nil {
		return nil, err
	}
	l.last = res
	return res, nil
}

func (l *Layer) forwardDense(in tensor.Volume) (*ForwardResult, error) {
	x, err := l.denseInput(in)
	if err != nil {
		return nil, err
	}

	z, err := l.eng.MatMul(x, l.weights)
	if err != nil {
		return nil, err
	}
	for i := 0; i < z.Rows(); i++ {
		row := z.Row(i)
		for j, b := range l.biases {
			row[j] += b
		}
	}

	var a *tensor.Matrix
	if l.kind == Softmax {
		a, err = l.eng.Softmax(z)
	} else {
		a, err = l.eng.Sigmoid(z)
	}
	if err != nil {
		return nil, err
	}

	return &ForwardResult{
		Input:         tensor.Volume{x},
		PreActivation: tensor.Volume{z},
		Output:        tensor.Volume{a},
	}, nil
}

// denseInput coerces the incoming volume into a [batch, inputSize] matrix.
// A single channel whose width already matches passes through; anything else
// is flattened channel-major into one row.
func (l *Layer) denseInput(in tensor.Volume) (*tensor.Matrix, error) {
	if in.Depth() == 1 && in[0].Cols() == l.inputSize {
		return in[0], nil
	}

	flat, err := l.eng.Flatten(in)
	if err != nil {
		return nil, err
	}
	if len(flat) != l.inputSize {
		return nil, fmt.Errorf("%w: layer expects %d inputs, got %d",
			tensor.ErrDimensionMismatch, l.inputSize, len(flat))
	}
	return tensor.FromSlice(flat, 1, l.inputSize)
}

func (l *Layer) forwardConv(in tensor.Volume) (*ForwardResult, error) {
	pre := make(tensor.Volume, 0, in.Depth()*len(l.kernels))
	post := make(tensor.Volume, 0, in.Depth()*len(l.kernels))

	for _, ch := range in {
		for _, k := range l.kernels {
			z, err := l.eng.Convolve(ch, k)
			if err != nil {
				return nil, err
			}
			a, err := l.eng.ReLU(z)
			if err != nil {
				return nil, err
			}
			pre = append(pre, z)
			post = append(post, a)
		}
	}

	return &ForwardResult{Input: in, PreActivation: pre, Output: post}, nil
}

func (l *Layer) forwardPool(in tensor.Volume) (*ForwardResult, error) {
	out := make(tensor.Volume, len(in))
	for i, ch := range in {
		pooled, err := l.eng.MaxPool(ch)
		if err != nil {
			return nil, err
		}
		out[i] = pooled
	}
	// Pooling has no activation; the pre-activation sum is the output itself.
	return &ForwardResult{Input: in, PreActivation: out, Output: out}, nil
}
