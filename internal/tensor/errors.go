package tensor

import "errors"

var (
	// ErrInvalidShape indicates a matrix with a non-positive row or column count.
	ErrInvalidShape = errors.New("tensor: rows and cols must be > 0")
	// ErrDataLength indicates a backing slice whose length does not match rows*cols.
	ErrDataLength = errors.New("tensor: data length does not match rows*cols")
	// ErrDimensionMismatch indicates operand shapes that are incompatible for the operation.
	ErrDimensionMismatch = errors.New("tensor: operand dimensions are incompatible")
	// ErrKernelSize indicates a convolution kernel that is not exactly 3x3.
	ErrKernelSize = errors.New("tensor: convolution kernel must be exactly 3x3")
	// ErrInputTooSmall indicates an input matrix smaller than the operation's window.
	ErrInputTooSmall = errors.New("tensor: input is smaller than the operation window")
	// ErrProbabilityRange indicates a probability outside [0, 1].
	ErrProbabilityRange = errors.New("tensor: probability must be in [0, 1]")
	// ErrEmptyVolume indicates a volume with no channels.
	ErrEmptyVolume = errors.New("tensor: volume must have at least one channel")
	// ErrChannelShape indicates volume channels with differing extents.
	ErrChannelShape = errors.New("tensor: all volume channels must share the same extents")
	// ErrWorkerFault indicates a parallel worker failed mid-kernel.
	ErrWorkerFault = errors.New("tensor: parallel worker fault")
)
