package erasure

import (
	"cmp"
	"unsafe"

	"github.com/oliverbestmann/erasure/alloc"
	"github.com/oliverbestmann/erasure/internal/assert"
)

// Inline stores its value in an inline buffer of Capacity bytes if the value
// fits, and in an exclusively owned heap cell otherwise. Values containing
// pointers are always stored on the heap.
//
// Values returned by Read and Write may point into the buffer of the
// container. They must not be used after the container was swapped, moved
// or reassigned.
type Inline[I any] struct {
	noCopy noCopy

	b    *binding[I]
	slot slot

	// heap is the location tag of the holder
	heap bool

	buf buffer

	tracker *alloc.Tracker
}

func (c *Inline[I]) Apply(opts ...Option) {
	applyOptions(&c.tracker, opts)
}

func (c *Inline[I]) Empty() bool {
	return c.b == nil
}

func (c *Inline[I]) Type() *Type {
	if c.b == nil {
		return nil
	}

	return c.b.typ
}

// Inlined reports whether the value is stored in the inline buffer.
func (c *Inline[I]) Inlined() bool {
	return c.b != nil && !c.heap
}

func (c *Inline[I]) Read() I {
	assert.Bound(c.b != nil, "Read")
	return c.b.view(c.slot.addr(&c.buf))
}

func (c *Inline[I]) Write() I {
	assert.Bound(c.b != nil, "Write")
	return c.b.view(c.slot.addr(&c.buf))
}

// CopyFrom replaces the value of c with a copy of the value of src. Where
// the copy is stored does not depend on where the value of src is stored.
func (c *Inline[I]) CopyFrom(src *Inline[I]) {
	if c == src {
		return
	}

	c.tracker = cmp.Or(c.tracker, src.tracker)

	tmp := Inline[I]{tracker: c.tracker}
	if src.b != nil {
		tmp.place(src.b, src.slot.addr(&src.buf))
	}

	c.Swap(&tmp)
	tmp.Reset()
}

// MoveFrom transfers the value of src to c. src is empty afterwards.
func (c *Inline[I]) MoveFrom(src *Inline[I]) {
	if c == src {
		return
	}

	c.tracker = cmp.Or(c.tracker, src.tracker)

	tmp := Inline[I]{tracker: c.tracker}
	tmp.Swap(src)

	c.Swap(&tmp)
	tmp.Reset()
}

func (c *Inline[I]) Swap(other *Inline[I]) {
	if c == other {
		return
	}

	swapHolders(
		&c.slot, &c.buf, c.heapResident(),
		&other.slot, &other.buf, other.heapResident(),
	)

	c.b, other.b = other.b, c.b
	c.heap, other.heap = other.heap, c.heap
}

func (c *Inline[I]) Reset() {
	if c.b == nil {
		return
	}

	if c.heap {
		c.tracker.Free()
	} else {
		c.buf.clear(c.slot.offset, c.b.layout.size)
	}

	c.b = nil
	c.slot = slot{}
	c.heap = false
}

func (c *Inline[I]) emplace(b *binding[I], src unsafe.Pointer) {
	tmp := Inline[I]{tracker: c.tracker}
	tmp.place(b, src)

	c.Swap(&tmp)
	tmp.Reset()
}

func (c *Inline[I]) holder(op string) (*binding[I], unsafe.Pointer) {
	assert.Bound(c.b != nil, op)

	if c.heap {
		return c.b, c.slot.cell
	}

	return c.b, c.buf.at(c.slot.offset)
}

func (c *Inline[I]) heapResident() bool {
	return c.b == nil || c.heap
}

// place constructs a holder for a copy of the representation at src.
// c must be empty.
func (c *Inline[I]) place(b *binding[I], src unsafe.Pointer) {
	l := b.layout

	if offset, ok := c.buf.fit(l.size, l.align, l.pointerFree); ok {
		target := c.buf.at(offset)
		assert.Aligned(uintptr(target), l.align)

		l.copy(target, src)
		c.slot = inlineSlot(offset)
		c.heap = false
	} else {
		cell := l.newCell(c.tracker)
		l.copy(cell, src)
		c.slot = heapSlot(cell)
		c.heap = true
	}

	c.b = b
}
