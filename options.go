package deferred

import "fmt"

// executorOptions holds configuration resolved from [ExecutorOption]
// values, the same two-stage "config struct + apply" shape the library's
// pool adapter uses for [PoolOption].
type executorOptions struct {
	queueCapacity int
	name          string
}

// ExecutorOption configures a [SerialExecutor].
type ExecutorOption interface {
	applyExecutor(*executorOptions) error
}

// executorOptionImpl implements ExecutorOption over a plain closure.
type executorOptionImpl struct {
	applyExecutorFunc func(*executorOptions) error
}

func (e *executorOptionImpl) applyExecutor(opts *executorOptions) error {
	return e.applyExecutorFunc(opts)
}

// WithQueueCapacity sets the buffered channel capacity backing a
// SerialExecutor's task queue. 0 (the default) means unbuffered: Submit
// blocks until the worker goroutine is ready for the next task. Negative
// capacities are rejected.
func WithQueueCapacity(capacity int) ExecutorOption {
	return &executorOptionImpl{func(opts *executorOptions) error {
		if capacity < 0 {
			return fmt.Errorf("deferred: queue capacity must be >= 0, got %d", capacity)
		}
		opts.queueCapacity = capacity
		return nil
	}}
}

// WithExecutorName attaches a label to a SerialExecutor, surfaced in
// recovered-panic log fields so multiple executors in one process can be
// told apart. An empty name is rejected.
func WithExecutorName(name string) ExecutorOption {
	return &executorOptionImpl{func(opts *executorOptions) error {
		if name == "" {
			return fmt.Errorf("deferred: executor name must not be empty")
		}
		opts.name = name
		return nil
	}}
}

// resolveExecutorOptions applies opts in order, skipping nil entries.
func resolveExecutorOptions(opts []ExecutorOption) (*executorOptions, error) {
	cfg := &executorOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyExecutor(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
