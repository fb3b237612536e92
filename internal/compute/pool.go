package compute

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// poolWindow is the fixed pooling window size and stride.
const poolWindow = 2

// MaxPool performs non-overlapping 2x2 max pooling with stride 2.
//
// Output extents are floor(H/2) x floor(W/2); a trailing odd row or column of
// the input is silently dropped. Inputs smaller than 2x2 fail. Output rows
// are computed in parallel.
func (e *Engine) MaxPool(m *tensor.Matrix) (*tensor.Matrix, error) {
	h, w := m.Dims()
	outH, outW := h/poolWindow, w/poolWindow
	if outH == 0 || outW == 0 {
		return nil, fmt.Errorf("%w: maxpool needs at least %dx%d input, got %dx%d",
			tensor.ErrInputTooSmall, poolWindow, poolWindow, h, w)
	}

	out, err := tensor.NewMatrix(outH, outW)
	if err != nil {
		return nil, err
	}

	md, od := m.Data(), out.Data()
	if err := e.fanOut(outH, func(i int) {
		for j := 0; j < outW; j++ {
			r, c := i*poolWindow, j*poolWindow
			best := md[r*w+c]
			if v := md[r*w+c+1]; v > best {
				best = v
			}
			if v := md[(r+1)*w+c]; v > best {
				best = v
			}
			if v := md[(r+1)*w+c+1]; v > best {
				best = v
			}
			od[i*outW+j] = best
		}
	}); err != nil {
		return nil, err
	}
	return out, nil
}
