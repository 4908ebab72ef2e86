package dedupe

// Option applies a configuration option to the memory suppressor.
type Option func(*memorySuppressor)

// WithLimit sets the maximum number of sessions kept in memory.
// A positive limit evicts the oldest entry when full; zero or negative
// disables eviction.
func WithLimit(limit int) Option {
	return func(s *memorySuppressor) {
		s.limit = limit
	}
}
