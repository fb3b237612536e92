package compute

import "github.com/ember-ml/ember/internal/tensor"

// Transpose returns a new matrix with out[j, i] = in[i, j].
// Rows of the output are independent and computed in parallel.
func (e *Engine) Transpose(m *tensor.Matrix) (*tensor.Matrix, error) {
	rows, cols := m.Dims()
	out, err := tensor.NewMatrix(cols, rows)
	if err != nil {
		return nil, err
	}

	md, od := m.Data(), out.Data()
	if err := e.fanOut(cols, func(j int) {
		for i := 0; i < rows; i++ {
			od[j*rows+i] = md[i*cols+j]
		}
	}); err != nil {
		return nil, err
	}
	return out, nil
}
