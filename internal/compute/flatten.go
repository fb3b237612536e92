package compute

import "github.com/ember-ml/ember/internal/tensor"

// Flatten concatenates a volume's channels into a single vector of length
// depth*h*w. Layout is channel-major: channel i's row-major matrix occupies
// the contiguous slice [i*h*w, (i+1)*h*w). Channels are copied in parallel
// into their disjoint destination slices.
func (e *Engine) Flatten(vol tensor.Volume) (tensor.Vector, error) {
	if vol.Depth() == 0 {
		return nil, tensor.ErrEmptyVolume
	}

	h, w := vol.Dims()
	stride := h * w
	out := tensor.NewVector(vol.Depth() * stride)

	if err := e.fanOut(vol.Depth(), func(i int) {
		copy(out[i*stride:(i+1)*stride], vol[i].Data())
	}); err != nil {
		return nil, err
	}
	return out, nil
}
