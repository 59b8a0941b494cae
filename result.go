package deferred

// Result is a tagged success/failure sum type, the value type every
// [Task] carries.
type Result[V any] struct {
	value V
	err   error
	ok    bool
}

// Ok constructs a successful Result.
func Ok[V any](v V) Result[V] { return Result[V]{value: v, ok: true} }

// Err constructs a failed Result. Passing a nil err still produces a
// failed Result (IsSuccess reports false); callers should not rely on
// Get's error being non-nil purely from construction, only from the
// IsSuccess/ok contract.
func Err[V any](err error) Result[V] { return Result[V]{err: err, value: zeroOf[V]()} }

func zeroOf[V any]() (z V) { return }

// IsSuccess reports whether the Result holds a success value.
func (r Result[V]) IsSuccess() bool { return r.ok }

// Get returns the success value and a nil error, or the zero value and
// the failure error.
func (r Result[V]) Get() (V, error) { return r.value, r.err }

// Value returns the success value, or the zero value if failed.
func (r Result[V]) Value() V { return r.value }

// Error returns the failure error, or nil if successful.
func (r Result[V]) Error() error { return r.err }

// Try runs body and converts its return into a Result: a nil error
// produces Ok, a non-nil error produces Err. body's own panics are not
// recovered here; see [TaskMap] and friends for panic-to-failure
// conversion at the Task layer.
func Try[V any](body func() (V, error)) Result[V] {
	v, err := body()
	if err != nil {
		return Err[V](err)
	}
	return Ok(v)
}

// ResultFromCompletionHandler mirrors a host-platform completion handler
// shaped like (value *V, err error): if value is non-nil, succeeds with
// *value; else if err is non-nil, fails with err; else fails with
// [ErrInvalidCompletionHandlerInput].
func ResultFromCompletionHandler[V any](value *V, err error) Result[V] {
	if value != nil {
		return Ok(*value)
	}
	if err != nil {
		return Err[V](err)
	}
	return Err[V](ErrInvalidCompletionHandlerInput)
}

// MapResult transforms a successful value, passing failures through
// unchanged.
func MapResult[V, W any](r Result[V], f func(V) W) Result[W] {
	if !r.IsSuccess() {
		return Err[W](r.err)
	}
	return Ok(f(r.value))
}

// FlatMapResult chains a Result-producing function onto a successful
// value, passing failures through unchanged.
func FlatMapResult[V, W any](r Result[V], f func(V) Result[W]) Result[W] {
	if !r.IsSuccess() {
		return Err[W](r.err)
	}
	return f(r.value)
}

// MapResultError transforms a failure's error, passing successes through
// unchanged.
func MapResultError[V any](r Result[V], f func(error) error) Result[V] {
	if r.IsSuccess() {
		return r
	}
	return Err[V](f(r.err))
}

// FlatMapResultError chains a Result-producing recovery function onto a
// failure, passing successes through unchanged.
func FlatMapResultError[V any](r Result[V], f func(error) Result[V]) Result[V] {
	if r.IsSuccess() {
		return r
	}
	return f(r.err)
}
