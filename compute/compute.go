// Copyright 2026 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package compute provides the public API for the Ember kernel engine.
//
// The engine runs every kernel with a synchronous data-parallel fan-out over
// disjoint output partitions. All kernels allocate fresh outputs and never
// mutate their inputs.
//
// Example:
//
//	eng := compute.New()
//	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
//	at, err := eng.Transpose(a)
package compute

import (
	"github.com/ember-ml/ember/internal/compute"
	"github.com/ember-ml/ember/internal/parallel"
)

// Engine executes the dense kernels with a bounded worker fan-out.
type Engine = compute.Engine

// Config controls the engine's parallel execution behavior.
type Config = parallel.Config

// New creates an engine with the default parallel configuration
// (one worker per CPU).
func New() *Engine {
	return compute.New()
}

// NewWithConfig creates an engine with an explicit parallel configuration.
//
// Example:
//
//	eng := compute.NewWithConfig(compute.Config{Enabled: false})
func NewWithConfig(cfg Config) *Engine {
	return compute.NewWithConfig(cfg)
}

// DefaultConfig returns the parallel defaults based on CPU count.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}
