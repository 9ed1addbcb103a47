package stack

import (
	"github.com/go-logr/logr"

	"github.com/IanAMacMillan/wavestate-utilities/internal/tensor"
)

// Option configures a stacking call.
type Option func(*options)

type options struct {
	dtype    tensor.DataType
	hasDType bool
	logger   logr.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: logr.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithDType forces the result data type instead of promoting the element types.
// Values are converted with truncation where the type is narrower.
func WithDType(dtype tensor.DataType) Option {
	return func(o *options) {
		o.dtype = dtype
		o.hasDType = true
	}
}

// WithLogger sets the logger used for V(1) tracing of resolved shapes and types.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
