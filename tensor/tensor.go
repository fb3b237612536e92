// Copyright 2026 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for Ember's dense buffer types.
//
// The package defines the three shapes the compute engine operates on:
//   - Matrix: dense 2D buffer, row-major layout
//   - Vector: dense 1D buffer
//   - Volume: ordered stack of same-shaped matrices (channels)
//
// Example:
//
//	m, err := tensor.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
package tensor

import (
	"github.com/ember-ml/ember/internal/tensor"
)

// Matrix is a dense rectangular buffer of float64 values with fixed
// rows x cols extents and row-major addressing.
type Matrix = tensor.Matrix

// Vector is a dense 1D buffer of float64 values.
type Vector = tensor.Vector

// Volume is an ordered stack of same-shaped matrices, indexed by channel.
type Volume = tensor.Volume

// Sentinel errors surfaced by the buffer types and the compute kernels.
// Match with errors.Is.
var (
	ErrInvalidShape      = tensor.ErrInvalidShape
	ErrDataLength        = tensor.ErrDataLength
	ErrDimensionMismatch = tensor.ErrDimensionMismatch
	ErrKernelSize        = tensor.ErrKernelSize
	ErrInputTooSmall     = tensor.ErrInputTooSmall
	ErrProbabilityRange  = tensor.ErrProbabilityRange
	ErrEmptyVolume       = tensor.ErrEmptyVolume
	ErrChannelShape      = tensor.ErrChannelShape
	ErrWorkerFault       = tensor.ErrWorkerFault
)

// NewMatrix creates a zero-filled matrix with the given extents.
func NewMatrix(rows, cols int) (*Matrix, error) {
	return tensor.NewMatrix(rows, cols)
}

// FromSlice wraps caller-supplied row-major data in a matrix.
// len(data) must equal rows*cols.
func FromSlice(data []float64, rows, cols int) (*Matrix, error) {
	return tensor.FromSlice(data, rows, cols)
}

// Full creates a matrix with every element set to value.
func Full(rows, cols int, value float64) (*Matrix, error) {
	return tensor.Full(rows, cols, value)
}

// Rand creates a matrix with every element drawn uniformly from [0, 1).
func Rand(rows, cols int) (*Matrix, error) {
	return tensor.Rand(rows, cols)
}

// NewVector creates a zero-filled vector of length n.
func NewVector(n int) Vector {
	return tensor.NewVector(n)
}

// NewVolume builds a volume from the given channels. At least one channel is
// required and all channels must share extents.
func NewVolume(channels ...*Matrix) (Volume, error) {
	return tensor.NewVolume(channels...)
}
