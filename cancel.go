package deferred

import "sync"

// CancelSignal is the read side of a [CancelSource]: it reports whether
// cancellation has fired and lets callers register a handler to run when
// it does. A zero CancelSignal has no way to fire; obtain one from
// [CancelSource.Signal] or [AnyCancelSignal].
type CancelSignal struct {
	mu       sync.RWMutex
	handlers []func(reason error)
	reason   error
	fired    bool
}

func newCancelSignal() *CancelSignal {
	return &CancelSignal{}
}

// Cancelled reports whether the signal has fired.
func (s *CancelSignal) Cancelled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fired
}

// Reason returns the cancellation reason, or nil if the signal has not
// fired.
func (s *CancelSignal) Reason() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reason
}

// OnCancel registers handler to run when the signal fires. If the signal
// has already fired, handler runs immediately with the existing reason.
// Handlers registered on a fired signal never block the caller on any
// other handler.
func (s *CancelSignal) OnCancel(handler func(reason error)) {
	if handler == nil {
		return
	}

	s.mu.Lock()
	if s.fired {
		reason := s.reason
		s.mu.Unlock()
		handler(reason)
		return
	}
	s.handlers = append(s.handlers, handler)
	s.mu.Unlock()
}

func (s *CancelSignal) fire(reason error) {
	s.mu.Lock()
	if s.fired {
		s.mu.Unlock()
		return
	}
	if reason == nil {
		reason = &CancellationError{}
	}
	s.fired = true
	s.reason = reason
	handlers := s.handlers
	s.handlers = nil
	s.mu.Unlock()

	for _, h := range handlers {
		h(reason)
	}
}

// CancelSource is the write side of a [CancelSignal]: a single point of
// cancellation that can be fanned out to many [Task] values via
// [BindTask], so a cancel tree or a task group can be torn down with one
// call.
type CancelSource struct {
	signal *CancelSignal
}

// NewCancelSource constructs a ready-to-use CancelSource.
func NewCancelSource() *CancelSource {
	return &CancelSource{signal: newCancelSignal()}
}

// Signal returns the source's associated CancelSignal. Always the same
// value for a given CancelSource.
func (c *CancelSource) Signal() *CancelSignal { return c.signal }

// Cancel fires the source's signal with reason, invoking every registered
// handler. A nil reason is reported as a default [CancellationError].
// Subsequent calls are no-ops: a CancelSource fires at most once.
func (c *CancelSource) Cancel(reason error) {
	c.signal.fire(reason)
}

// BindTask arranges for task to be cancelled whenever c fires, and
// returns task unchanged so the call can be chained at the point of
// construction, e.g. BindTask(group, Async(...)).
func BindTask[V any](c *CancelSource, task Task[V]) Task[V] {
	c.signal.OnCancel(func(error) { task.Cancel() })
	return task
}

// AnyCancelSignal returns a CancelSignal that fires as soon as any of
// signals fires, carrying that signal's reason. Nil entries are skipped.
// An empty or all-nil signals never fires.
func AnyCancelSignal(signals []*CancelSignal) *CancelSignal {
	composite := newCancelSignal()

	for _, sig := range signals {
		if sig != nil && sig.Cancelled() {
			composite.fire(sig.Reason())
			return composite
		}
	}

	var once sync.Once
	for _, sig := range signals {
		if sig == nil {
			continue
		}
		sig.OnCancel(func(reason error) {
			once.Do(func() { composite.fire(reason) })
		})
	}
	return composite
}
