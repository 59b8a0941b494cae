package deferred

// Promise is a write-only handle to a Deferred cell. Typically one
// Promise exists per cell, but nothing prevents multiple Promises racing
// to fill it; at most one Fill succeeds.
type Promise[V any] struct {
	cell *deferredCell[V]
}

// IsFilled reports whether the cell has already been filled.
func (p Promise[V]) IsFilled() bool { return p.cell.isFilled() }

// Fill attempts the empty-to-filled transition, returning true if this
// call performed it. It never blocks and never panics.
func (p Promise[V]) Fill(v V) bool { return p.cell.fill(v) }

// TryFill is an alias for Fill, named to mirror [Promise.MustFill]'s
// strict counterpart at call sites that want to make the non-panicking
// contract explicit.
func (p Promise[V]) TryFill(v V) bool { return p.cell.fill(v) }

// MustFill fills the cell, panicking if it was already filled. Use this
// where the program's structure guarantees single-producer discipline and
// a double fill indicates a programmer error worth terminating on.
func (p Promise[V]) MustFill(v V) {
	if !p.cell.fill(v) {
		panic("deferred: MustFill called on an already-filled cell")
	}
}
