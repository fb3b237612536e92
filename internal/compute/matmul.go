package compute

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// MatMul performs dense matrix multiplication: (M, K) @ (K, N) -> (M, N).
//
// Output rows are independent and computed in parallel; each row accumulates
// across the shared inner dimension without touching any other row's region.
func (e *Engine) MatMul(a, b *tensor.Matrix) (*tensor.Matrix, error) {
	m, k := a.Dims()
	kAlt, n := b.Dims()
	if k != kAlt {
		return nil, fmt.Errorf("%w: matmul [%dx%d] @ [%dx%d]",
			tensor.ErrDimensionMismatch, m, k, kAlt, n)
	}

	out, err := tensor.NewMatrix(m, n)
	if err != nil {
		return nil, err
	}

	ad, bd, cd := a.Data(), b.Data(), out.Data()
	if err := e.fanOut(m, func(i int) {
		for j := 0; j < n; j++ {
			sum := 0.0
			for kk := 0; kk < k; kk++ {
				sum += ad[i*k+kk] * bd[kk*n+j]
			}
			cd[i*n+j] = sum
		}
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// MulVec multiplies a vector by a matrix: (K) @ (K, N) -> (N).
//
// Requires len(v) == m.Rows(). Each output column is the dot product of the
// vector with that column; columns are computed in parallel into disjoint
// output slots.
func (e *Engine) MulVec(v tensor.Vector, m *tensor.Matrix) (tensor.Vector, error) {
	k, n := m.Dims()
	if len(v) != k {
		return nil, fmt.Errorf("%w: mulvec len %d @ [%dx%d]",
			tensor.ErrDimensionMismatch, len(v), k, n)
	}

	out := tensor.NewVector(n)
	md := m.Data()
	if err := e.fanOut(n, func(j int) {
		sum := 0.0
		for i := 0; i < k; i++ {
			sum += v[i] * md[i*n+j]
		}
		out[j] = sum
	}); err != nil {
		return nil, err
	}
	return out, nil
}
