package omap

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
	name   string
}

// Option configures a Map at construction time.
type Option func(*options)

// WithLogger sets the logger used to report callback failures.
// The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName names the map's logger.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name != "" {
		o.logger = o.logger.Named(o.name)
	}
	return o
}
