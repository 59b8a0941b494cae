package deferred

import "sync"

// Executor is a polymorphic sink accepting closures for eventual
// execution. Submit must not run fn synchronously on the caller's
// goroutine unless the implementation documents itself as immediate.
// Ordering between two submissions to the same Executor is FIFO for
// serial executors and unspecified for concurrent ones.
type Executor interface {
	Submit(fn func())
}

// CancellableWork pairs a closure with a cancellation flag an Executor may
// consult before invoking it, letting a pool skip work that was abandoned
// while queued.
type CancellableWork struct {
	Fn          func()
	IsCancelled func() bool
}

// CancellableExecutor is implemented by executors that can skip queued
// work which was cancelled before it began.
type CancellableExecutor interface {
	Executor
	SubmitCancellable(work CancellableWork)
}

// ImmediateExecutor runs the submitted closure synchronously, on the
// caller's goroutine. This is the one Executor explicitly documented as
// not deferring; it exists for tests and for call sites that are already
// on a safe goroutine (e.g. a dedicated worker) and want to skip a hop.
type ImmediateExecutor struct{}

// Submit runs fn before returning.
func (ImmediateExecutor) Submit(fn func()) { fn() }

// SubmitCancellable runs fn before returning unless IsCancelled reports
// true at the moment of the call.
func (ImmediateExecutor) SubmitCancellable(work CancellableWork) {
	if work.IsCancelled != nil && work.IsCancelled() {
		return
	}
	work.Fn()
}

var (
	_ Executor            = ImmediateExecutor{}
	_ CancellableExecutor = ImmediateExecutor{}
)

// SerialExecutor is a FIFO, goroutine-backed queue. Submissions run one at
// a time, in submission order, on a single background goroutine owned by
// the executor.
type SerialExecutor struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
	name  string
}

// NewSerialExecutor starts a SerialExecutor, applying opts in order. The
// queue capacity defaults to 0 (unbuffered); see [WithQueueCapacity].
func NewSerialExecutor(opts ...ExecutorOption) (*SerialExecutor, error) {
	cfg, err := resolveExecutorOptions(opts)
	if err != nil {
		return nil, err
	}
	s := &SerialExecutor{
		tasks: make(chan func(), cfg.queueCapacity),
		done:  make(chan struct{}),
		name:  cfg.name,
	}
	go s.run()
	return s, nil
}

func (s *SerialExecutor) run() {
	defer close(s.done)
	for fn := range s.tasks {
		s.runOne(fn)
	}
}

// runOne recovers a panicking task so one bad submission cannot kill the
// worker goroutine and wedge every future Submit.
func (s *SerialExecutor) runOne(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logRecoveredPanic("executor."+s.name, r)
		}
	}()
	fn()
}

// Submit enqueues fn. A panic from fn is recovered and logged via
// [SetLogger] so it cannot take down the worker goroutine, but — unlike
// [TaskMap] and friends — it is not converted into a [Result] here, since
// Executor.Submit has no channel back to the caller for one.
func (s *SerialExecutor) Submit(fn func()) {
	s.tasks <- fn
}

// Close stops accepting new work and waits for the queue to drain.
func (s *SerialExecutor) Close() error {
	s.once.Do(func() { close(s.tasks) })
	<-s.done
	return nil
}

var _ Executor = (*SerialExecutor)(nil)
