package worker

// Option applies a configuration option to the SubmissionWorker.
type Option func(*SubmissionWorker)

// WithName sets the worker's name, used in log annotations.
func WithName(name string) Option {
	return func(w *SubmissionWorker) {
		if name != "" {
			w.name = name
		}
	}
}
