package tensor

import "fmt"

// Volume is an ordered stack of same-shaped matrices, indexed by channel.
// Convolutional and pooling stages transform volumes channel by channel
// before they are flattened into the vector form dense layers consume.
type Volume []*Matrix

// NewVolume builds a volume from the given channels.
// At least one channel is required and all channels must share extents.
func NewVolume(channels ...*Matrix) (Volume, error) {
	if len(channels) == 0 {
		return nil, ErrEmptyVolume
	}
	first := channels[0]
	for i, ch := range channels[1:] {
		if !first.SameShape(ch) {
			return nil, fmt.Errorf("%w: channel 0 is %s, channel %d is %s",
				ErrChannelShape, first, i+1, ch)
		}
	}
	return Volume(channels), nil
}

// Depth returns the number of channels.
func (v Volume) Depth() int { return len(v) }

// Dims returns the shared channel extents as (rows, cols).
func (v Volume) Dims() (int, int) { return v[0].Dims() }

// NumElements returns the total element count across all channels.
func (v Volume) NumElements() int {
	if len(v) == 0 {
		return 0
	}
	return len(v) * v[0].NumElements()
}
