package compute

import (
	"fmt"
	"math"

	"github.com/ember-ml/ember/internal/tensor"
)

// convWindow is the fixed convolution window size.
const convWindow = 3

// Convolve performs a valid (no padding) 3x3 cross-correlation, normalized by
// the kernel's L1 norm (sum of absolute weights).
//
// The kernel must be exactly 3x3 and the input at least 3x3. The output
// shrinks by 2 in each dimension: (H, W) -> (H-2, W-2). Output rows are
// computed in parallel.
//
// An all-zero kernel yields a zero normalization factor; the resulting
// Inf/NaN values propagate to the caller unguarded.
func (e *Engine) Convolve(m, kernel *tensor.Matrix) (*tensor.Matrix, error) {
	kh, kw := kernel.Dims()
	if kh != convWindow || kw != convWindow {
		return nil, fmt.Errorf("%w: got %dx%d", tensor.ErrKernelSize, kh, kw)
	}
	h, w := m.Dims()
	if h < convWindow || w < convWindow {
		return nil, fmt.Errorf("%w: convolve needs at least %dx%d input, got %dx%d",
			tensor.ErrInputTooSmall, convWindow, convWindow, h, w)
	}

	outH, outW := h-convWindow+1, w-convWindow+1
	out, err := tensor.NewMatrix(outH, outW)
	if err != nil {
		return nil, err
	}

	norm := 0.0
	for _, kv := range kernel.Data() {
		norm += math.Abs(kv)
	}

	md, kd, od := m.Data(), kernel.Data(), out.Data()
	if err := e.fanOut(outH, func(i int) {
		for j := 0; j < outW; j++ {
			sum := 0.0
			for ki := 0; ki < convWindow; ki++ {
				for kj := 0; kj < convWindow; kj++ {
					sum += md[(i+ki)*w+(j+kj)] * kd[ki*convWindow+kj]
				}
			}
			od[i*outW+j] = sum / norm
		}
	}); err != nil {
		return nil, err
	}
	return out, nil
}
