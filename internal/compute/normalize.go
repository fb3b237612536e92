package compute

import (
	"math"

	"github.com/ember-ml/ember/internal/tensor"
)

// Normalize divides every element by the matrix's maximum value.
//
// The caller must ensure at least one positive element exists: an all-zero
// maximum produces Inf/NaN elements, which propagate unguarded (a modeling
// error at the call site, not an engine fault).
func (e *Engine) Normalize(m *tensor.Matrix) (*tensor.Matrix, error) {
	maxVal := math.Inf(-1)
	for _, v := range m.Data() {
		if v > maxVal {
			maxVal = v
		}
	}
	return e.elementwise(m, func(x float64) float64 {
		return x / maxVal
	})
}
