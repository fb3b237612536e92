// Package compute implements the Ember CPU kernels: dense matrix algebra,
// convolution, pooling, activations and stochastic perturbation.
//
// All kernels are pure: inputs are read-only and every call allocates a fresh
// output buffer. Work is fanned out across disjoint output partitions (rows,
// columns or channels depending on the kernel), so results are bit-identical
// for any worker count except for the stochastic kernels.
package compute

import (
	"fmt"

	"github.com/ember-ml/ember/internal/parallel"
	"github.com/ember-ml/ember/internal/tensor"
)

// Engine executes kernels with a bounded data-parallel fan-out.
// Every kernel call blocks until all partitions complete; there is no
// cancellation or streaming path.
type Engine struct {
	cfg parallel.Config
}

// New creates an engine with the default parallel configuration.
func New() *Engine {
	return &Engine{cfg: parallel.DefaultConfig()}
}

// NewWithConfig creates an engine with an explicit parallel configuration.
//
// Example:
//
//	eng := compute.NewWithConfig(parallel.Config{Enabled: false})
func NewWithConfig(cfg parallel.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's parallel configuration.
func (e *Engine) Config() parallel.Config { return e.cfg }

// fanOut runs f(i) for i in [0, n) and converts any worker fault into a
// single aggregated kernel error. Callers discard their output buffer on error.
func (e *Engine) fanOut(n int, f func(i int)) error {
	if err := parallel.For(n, f, e.cfg); err != nil {
		return fmt.Errorf("%w: %v", tensor.ErrWorkerFault, err)
	}
	return nil
}
