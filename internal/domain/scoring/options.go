package scoring

import "github.com/ethoslab/archetype/pkg/logger"

type settings struct {
	log logger.Logger
}

// Option applies a configuration option to an engine under construction.
type Option func(*settings)

// WithLogger sets the logger used for unmapped-trait warnings.
func WithLogger(log logger.Logger) Option {
	return func(s *settings) {
		if log != nil {
			s.log = log
		}
	}
}

func newSettings(opts ...Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
