// Package alloc counts the heap allocations made by erasure containers.
//
// A Tracker is an explicit measurement context. Containers that have a
// tracker attached record every heap cell they create and every heap cell
// they release on it. All heap cells of the erasure package are created
// through New, so a tracker observes every allocation the core makes.
package alloc

import "sync/atomic"

// Stats is the result of a measurement window.
type Stats struct {
	Allocs int64
	Frees  int64
}

type Tracker struct {
	allocs atomic.Int64
	frees  atomic.Int64
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Begin starts a new measurement window by resetting the counters.
func (t *Tracker) Begin() {
	t.allocs.Store(0)
	t.frees.Store(0)
}

// End returns the counts recorded since the last call to Begin.
func (t *Tracker) End() Stats {
	return Stats{
		Allocs: t.allocs.Load(),
		Frees:  t.frees.Load(),
	}
}

// Measure runs fn inside its own measurement window.
func (t *Tracker) Measure(fn func()) Stats {
	t.Begin()
	fn()
	return t.End()
}

// Free records the release of a heap cell. Calling Free on a nil
// tracker is a no-op.
func (t *Tracker) Free() {
	if t == nil {
		return
	}

	t.frees.Add(1)
}

// New allocates a zero T on the heap and records the allocation on t.
// t may be nil.
func New[T any](t *Tracker) *T {
	if t != nil {
		t.allocs.Add(1)
	}

	return new(T)
}
