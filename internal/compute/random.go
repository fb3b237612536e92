package compute

import (
	"fmt"
	"math/rand"

	"github.com/ember-ml/ember/internal/tensor"
)

// Randomize replaces each element, with the given probability, by a fresh
// uniform value in [0, 1); other elements are copied unchanged.
//
// A single draw decides replacement (Bernoulli test against probability).
// Each row task owns an independent generator seeded once at dispatch, so
// parallel workers never share random state. The kernel is non-deterministic
// by design.
func (e *Engine) Randomize(m *tensor.Matrix, probability float64) (*tensor.Matrix, error) {
	if err := checkProbability(probability); err != nil {
		return nil, err
	}

	rows, cols := m.Dims()
	out := m.Clone()
	base := rand.Int63()

	od := out.Data()
	if err := e.fanOut(rows, func(i int) {
		rng := rand.New(rand.NewSource(base + int64(i)))
		for j := i * cols; j < (i+1)*cols; j++ {
			if rng.Float64() < probability {
				od[j] = rng.Float64()
			}
		}
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// RandomizeVec is Randomize for vectors. The vector is partitioned into
// per-worker chunks, each with its own generator.
func (e *Engine) RandomizeVec(v tensor.Vector, probability float64) (tensor.Vector, error) {
	if err := checkProbability(probability); err != nil {
		return nil, err
	}

	out := v.Clone()
	base := rand.Int63()

	workers := e.cfg.NumWorkers
	if !e.cfg.Enabled || workers < 1 {
		workers = 1
	}
	chunk := (len(v) + workers - 1) / workers
	if chunk == 0 {
		return out, nil
	}
	tasks := (len(v) + chunk - 1) / chunk

	if err := e.fanOut(tasks, func(t int) {
		rng := rand.New(rand.NewSource(base + int64(t)))
		end := min((t+1)*chunk, len(out))
		for j := t * chunk; j < end; j++ {
			if rng.Float64() < probability {
				out[j] = rng.Float64()
			}
		}
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func checkProbability(p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: got %v", tensor.ErrProbabilityRange, p)
	}
	return nil
}
