// Copyright 2026 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for Ember network layers.
//
// A layer is one of a closed set of tagged variants dispatched through a
// single Forward operation. Forward returns the input, pre-activation and
// post-activation buffers explicitly so a backward pass can consume them as
// arguments instead of reading shared layer state.
//
// Example:
//
//	eng := compute.New()
//	out, _ := nn.NewSoftmax(128, 10, eng)
//	res, err := out.Forward(input)
package nn

import (
	"github.com/ember-ml/ember/internal/compute"
	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/tensor"
)

// Kind identifies a layer variant.
type Kind = nn.Kind

// Layer variants.
const (
	FullyConnected Kind = nn.FullyConnected
	Softmax        Kind = nn.Softmax
	Convolutional  Kind = nn.Convolutional
	MaxPool        Kind = nn.MaxPool
)

// Layer is a single network layer.
type Layer = nn.Layer

// ForwardResult carries the three buffers a forward call produces.
type ForwardResult = nn.ForwardResult

// NewFullyConnected creates a sigmoid-activated dense layer with
// Xavier-initialized weights and zero biases.
func NewFullyConnected(inputSize, outputSize int, eng *compute.Engine) (*Layer, error) {
	return nn.NewFullyConnected(inputSize, outputSize, eng)
}

// NewSoftmax creates a softmax output layer with Xavier-initialized weights
// and zero biases.
func NewSoftmax(inputSize, outputSize int, eng *compute.Engine) (*Layer, error) {
	return nn.NewSoftmax(inputSize, outputSize, eng)
}

// NewFullyConnectedFrom creates a dense layer from caller-supplied weights
// and biases.
func NewFullyConnectedFrom(weights *tensor.Matrix, biases tensor.Vector, eng *compute.Engine) (*Layer, error) {
	return nn.NewFullyConnectedFrom(weights, biases, eng)
}

// NewSoftmaxFrom creates a softmax layer from caller-supplied weights and biases.
func NewSoftmaxFrom(weights *tensor.Matrix, biases tensor.Vector, eng *compute.Engine) (*Layer, error) {
	return nn.NewSoftmaxFrom(weights, biases, eng)
}

// NewConvolutional creates a ReLU-activated convolution layer applying each
// 3x3 kernel to every input channel.
func NewConvolutional(kernels []*tensor.Matrix, eng *compute.Engine) (*Layer, error) {
	return nn.NewConvolutional(kernels, eng)
}

// NewMaxPool creates a 2x2 stride-2 pooling layer.
func NewMaxPool(eng *compute.Engine) *Layer {
	return nn.NewMaxPool(eng)
}
