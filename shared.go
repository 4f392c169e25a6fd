package erasure

import (
	"cmp"
	"unsafe"

	"github.com/oliverbestmann/erasure/alloc"
	"github.com/oliverbestmann/erasure/internal/assert"
)

// Shared stores its value in a reference counted heap cell. Copies share
// the cell until one of them is written to.
//
// The reference count is atomic, copies and resets of containers sharing
// a cell may happen concurrently. Write is not atomic: two goroutines
// writing to containers that share one cell concurrently race.
type Shared[I any] struct {
	noCopy noCopy

	b    *binding[I]
	cell unsafe.Pointer

	tracker *alloc.Tracker
}

func (c *Shared[I]) Apply(opts ...Option) {
	applyOptions(&c.tracker, opts)
}

func (c *Shared[I]) Empty() bool {
	return c.b == nil
}

func (c *Shared[I]) Type() *Type {
	if c.b == nil {
		return nil
	}

	return c.b.typ
}

// UseCount returns the number of containers sharing the value of c.
func (c *Shared[I]) UseCount() int64 {
	if c.b == nil {
		return 0
	}

	return counterAt(c.cell).refs.Load()
}

func (c *Shared[I]) Unique() bool {
	return c.UseCount() == 1
}

// Read exposes the value without copying it, even if it is shared.
func (c *Shared[I]) Read() I {
	assert.Bound(c.b != nil, "Read")
	return c.b.view(c.value())
}

// Write exposes a value that is not shared with any other container,
// copying it first if required.
func (c *Shared[I]) Write() I {
	assert.Bound(c.b != nil, "Write")

	if !counterAt(c.cell).unique() {
		tmp := Shared[I]{tracker: c.tracker}
		tmp.place(c.b, c.value())

		c.Swap(&tmp)
		tmp.Reset()
	}

	return c.b.view(c.value())
}

// CopyFrom shares the value of src with c.
func (c *Shared[I]) CopyFrom(src *Shared[I]) {
	if c == src {
		return
	}

	c.tracker = cmp.Or(c.tracker, src.tracker)

	tmp := Shared[I]{tracker: c.tracker}
	if src.b != nil {
		counterAt(src.cell).retain()
		tmp.b, tmp.cell = src.b, src.cell
	}

	c.Swap(&tmp)
	tmp.Reset()
}

// MoveFrom transfers the reference of src to c. src is empty afterwards.
func (c *Shared[I]) MoveFrom(src *Shared[I]) {
	if c == src {
		return
	}

	c.tracker = cmp.Or(c.tracker, src.tracker)

	c.Reset()

	c.b, c.cell = src.b, src.cell
	src.b, src.cell = nil, nil
}

func (c *Shared[I]) Swap(other *Shared[I]) {
	c.b, other.b = other.b, c.b
	c.cell, other.cell = other.cell, c.cell
}

// Reset drops the reference of c. The value is released when the
// last reference is dropped.
func (c *Shared[I]) Reset() {
	if c.b == nil {
		return
	}

	if counterAt(c.cell).release() {
		c.tracker.Free()
	}

	c.b = nil
	c.cell = nil
}

func (c *Shared[I]) emplace(b *binding[I], src unsafe.Pointer) {
	tmp := Shared[I]{tracker: c.tracker}
	tmp.place(b, src)

	c.Swap(&tmp)
	tmp.Reset()
}

func (c *Shared[I]) holder(op string) (*binding[I], unsafe.Pointer) {
	assert.Bound(c.b != nil, op)
	return c.b, c.value()
}

func (c *Shared[I]) value() unsafe.Pointer {
	return unsafe.Add(c.cell, c.b.layout.sharedOffset)
}

func (c *Shared[I]) place(b *binding[I], src unsafe.Pointer) {
	cell := b.layout.newSharedCell(c.tracker)
	b.layout.copy(unsafe.Add(cell, b.layout.sharedOffset), src)

	c.b = b
	c.cell = cell
}
