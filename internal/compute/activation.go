package compute

import (
	"math"

	"github.com/ember-ml/ember/internal/tensor"
)

// ReLU produces max(0, x) elementwise. Rows are processed in parallel.
func (e *Engine) ReLU(m *tensor.Matrix) (*tensor.Matrix, error) {
	return e.elementwise(m, func(x float64) float64 {
		if x > 0 {
			return x
		}
		return 0
	})
}

// Sigmoid produces 1/(1+e^-x) elementwise.
func (e *Engine) Sigmoid(m *tensor.Matrix) (*tensor.Matrix, error) {
	return e.elementwise(m, sigmoid)
}

// SigmoidVec is Sigmoid for vectors.
func (e *Engine) SigmoidVec(v tensor.Vector) (tensor.Vector, error) {
	return e.elementwiseVec(v, sigmoid)
}

// SigmoidPrime produces the derivative of Sigmoid, e^-x/(1+e^-x)^2,
// elementwise. Used by the backward-pass collaborator.
func (e *Engine) SigmoidPrime(m *tensor.Matrix) (*tensor.Matrix, error) {
	return e.elementwise(m, sigmoidPrime)
}

// SigmoidPrimeVec is SigmoidPrime for vectors.
func (e *Engine) SigmoidPrimeVec(v tensor.Vector) (tensor.Vector, error) {
	return e.elementwiseVec(v, sigmoidPrime)
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func sigmoidPrime(x float64) float64 {
	ex := math.Exp(-x)
	return ex / ((1.0 + ex) * (1.0 + ex))
}

// Softmax computes a row-wise softmax: each row becomes a probability
// distribution. The row maximum is subtracted before exponentiation for
// numerical stability. Rows are processed in parallel.
func (e *Engine) Softmax(m *tensor.Matrix) (*tensor.Matrix, error) {
	rows, cols := m.Dims()
	out, err := tensor.NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}

	if err := e.fanOut(rows, func(i int) {
		src, dst := m.Row(i), out.Row(i)

		maxVal := math.Inf(-1)
		for _, v := range src {
			if v > maxVal {
				maxVal = v
			}
		}

		sum := 0.0
		for j, v := range src {
			ev := math.Exp(v - maxVal)
			dst[j] = ev
			sum += ev
		}
		for j := range dst {
			dst[j] /= sum
		}
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// elementwise applies f to every element, fanning out over rows.
// Elements are independent by construction: f sees one value and writes one
// disjoint output slot.
func (e *Engine) elementwise(m *tensor.Matrix, f func(float64) float64) (*tensor.Matrix, error) {
	rows, cols := m.Dims()
	out, err := tensor.NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}

	md, od := m.Data(), out.Data()
	if err := e.fanOut(rows, func(i int) {
		for j := i * cols; j < (i+1)*cols; j++ {
			od[j] = f(md[j])
		}
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Engine) elementwiseVec(v tensor.Vector, f func(float64) float64) (tensor.Vector, error) {
	out := tensor.NewVector(len(v))
	if err := e.fanOut(len(v), func(i int) {
		out[i] = f(v[i])
	}); err != nil {
		return nil, err
	}
	return out, nil
}
