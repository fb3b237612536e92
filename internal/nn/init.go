package nn

import (
	"math"
	"math/rand"

	"github.com/ember-ml/ember/internal/tensor"
)

// xavier returns a fanIn x fanOut weight matrix drawn from the Glorot uniform
// distribution U(-sqrt(6/(fanIn+fanOut)), +sqrt(6/(fanIn+fanOut))), which
// keeps activation variance roughly constant across layers.
func xavier(fanIn, fanOut int) (*tensor.Matrix, error) {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	m, err := tensor.NewMatrix(fanIn, fanOut)
	if err != nil {
		return nil, err
	}
	data := m.Data()
	for i := range data {
		//nolint:gosec // math/rand is fine for weight initialization
		data[i] = (rand.Float64()*2.0 - 1.0) * bound
	}
	return m, nil
}
