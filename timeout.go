package deferred

import "time"

// Timeout describes a wait deadline: fire immediately, never, or after a
// bounded duration from the moment it is converted.
type Timeout struct {
	kind timeoutKind
	d    time.Duration
}

type timeoutKind int

const (
	timeoutImmediate timeoutKind = iota
	timeoutUnbounded
	timeoutBounded
)

// Immediate returns a Timeout that expires at once: [Future.Wait] returns
// immediately with whatever state the cell is already in.
func Immediate() Timeout { return Timeout{kind: timeoutImmediate} }

// Unbounded returns a Timeout that never expires: [Future.Wait] blocks
// until the cell is filled or destroyed.
func Unbounded() Timeout { return Timeout{kind: timeoutUnbounded} }

// Bounded returns a Timeout that expires d after it is converted to a
// deadline, i.e. d after the [Future.Wait] call that uses it.
func Bounded(d time.Duration) Timeout { return Timeout{kind: timeoutBounded, d: d} }

// Deadline converts the Timeout to an absolute deadline using the
// monotonic clock, anchored to the moment Deadline is called. The second
// return value is false for [Unbounded], in which case the first is the
// zero Time and must not be used.
func (t Timeout) Deadline() (deadline time.Time, bounded bool) {
	switch t.kind {
	case timeoutImmediate:
		return time.Now(), true
	case timeoutBounded:
		return time.Now().Add(t.d), true
	default: // timeoutUnbounded
		return time.Time{}, false
	}
}
