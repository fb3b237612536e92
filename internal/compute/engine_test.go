package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/parallel"
	"github.com/ember-ml/ember/internal/tensor"
)

// TestFanOut_WorkerFault verifies a failing task surfaces as a single
// ErrWorkerFault-wrapped error for the whole kernel call.
func TestFanOut_WorkerFault(t *testing.T) {
	for _, cfg := range []parallel.Config{
		{Enabled: true, NumWorkers: 4, MinChunkSize: 1},
		{Enabled: false},
	} {
		eng := NewWithConfig(cfg)
		err := eng.fanOut(64, func(i int) {
			if i == 3 {
				panic("kernel fault")
			}
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, tensor.ErrWorkerFault)
		assert.Contains(t, err.Error(), "kernel fault")
	}
}

// TestFanOut_NoFault completes cleanly when every partition succeeds.
func TestFanOut_NoFault(t *testing.T) {
	eng := New()
	out := make([]int, 128)
	err := eng.fanOut(len(out), func(i int) { out[i] = i })
	require.NoError(t, err)
	assert.Equal(t, 100, out[100])
}
