package erasure

import (
	"cmp"
	"unsafe"

	"github.com/oliverbestmann/erasure/alloc"
	"github.com/oliverbestmann/erasure/internal/assert"
)

// Heap stores its value in a heap cell it owns exclusively.
type Heap[I any] struct {
	noCopy noCopy

	b    *binding[I]
	cell unsafe.Pointer

	tracker *alloc.Tracker
}

func (c *Heap[I]) Apply(opts ...Option) {
	applyOptions(&c.tracker, opts)
}

func (c *Heap[I]) Empty() bool {
	return c.b == nil
}

func (c *Heap[I]) Type() *Type {
	if c.b == nil {
		return nil
	}

	return c.b.typ
}

func (c *Heap[I]) Read() I {
	assert.Bound(c.b != nil, "Read")
	return c.b.view(c.cell)
}

func (c *Heap[I]) Write() I {
	assert.Bound(c.b != nil, "Write")
	return c.b.view(c.cell)
}

// CopyFrom replaces the value of c with a copy of the value of src.
func (c *Heap[I]) CopyFrom(src *Heap[I]) {
	if c == src {
		return
	}

	c.tracker = cmp.Or(c.tracker, src.tracker)

	tmp := Heap[I]{tracker: c.tracker}
	if src.b != nil {
		tmp.place(src.b, src.cell)
	}

	c.Swap(&tmp)
	tmp.Reset()
}

// MoveFrom transfers the value of src to c. src is empty afterwards.
func (c *Heap[I]) MoveFrom(src *Heap[I]) {
	if c == src {
		return
	}

	c.tracker = cmp.Or(c.tracker, src.tracker)

	c.Reset()

	c.b, c.cell = src.b, src.cell
	src.b, src.cell = nil, nil
}

func (c *Heap[I]) Swap(other *Heap[I]) {
	c.b, other.b = other.b, c.b
	c.cell, other.cell = other.cell, c.cell
}

func (c *Heap[I]) Reset() {
	if c.b == nil {
		return
	}

	c.tracker.Free()

	c.b = nil
	c.cell = nil
}

func (c *Heap[I]) emplace(b *binding[I], src unsafe.Pointer) {
	tmp := Heap[I]{tracker: c.tracker}
	tmp.place(b, src)

	c.Swap(&tmp)
	tmp.Reset()
}

func (c *Heap[I]) holder(op string) (*binding[I], unsafe.Pointer) {
	assert.Bound(c.b != nil, op)
	return c.b, c.cell
}

func (c *Heap[I]) place(b *binding[I], src unsafe.Pointer) {
	cell := b.layout.newCell(c.tracker)
	b.layout.copy(cell, src)

	c.b = b
	c.cell = cell
}
