package erasure

import (
	"cmp"
	"unsafe"

	"github.com/oliverbestmann/erasure/alloc"
	"github.com/oliverbestmann/erasure/internal/assert"
)

// SharedInline combines Shared and Inline. The holder is a reference counted
// cell that lives in the inline buffer if the value is pointer free and the
// cell fits, and on the heap otherwise.
//
// Copying an inline holder copies its bytes, including the reference count,
// into the buffer of the copy. The first write to the copy then clones the
// value in place without allocating.
type SharedInline[I any] struct {
	noCopy noCopy

	b    *binding[I]
	slot slot
	buf  buffer

	tracker *alloc.Tracker
}

func (c *SharedInline[I]) Apply(opts ...Option) {
	applyOptions(&c.tracker, opts)
}

func (c *SharedInline[I]) Empty() bool {
	return c.b == nil
}

func (c *SharedInline[I]) Type() *Type {
	if c.b == nil {
		return nil
	}

	return c.b.typ
}

// Inlined reports whether the holder is stored in the inline buffer.
func (c *SharedInline[I]) Inlined() bool {
	return !c.heapAllocated()
}

// UseCount returns the reference count of the holder of c.
func (c *SharedInline[I]) UseCount() int64 {
	if c.b == nil {
		return 0
	}

	return counterAt(c.cell()).refs.Load()
}

func (c *SharedInline[I]) Unique() bool {
	return c.UseCount() == 1
}

func (c *SharedInline[I]) Read() I {
	assert.Bound(c.b != nil, "Read")
	return c.b.view(c.value())
}

func (c *SharedInline[I]) Write() I {
	assert.Bound(c.b != nil, "Write")

	if !counterAt(c.cell()).unique() {
		tmp := SharedInline[I]{tracker: c.tracker}
		tmp.place(c.b, c.value())

		c.Swap(&tmp)
		tmp.Reset()
	}

	return c.b.view(c.value())
}

// CopyFrom shares the holder of src with c. It never allocates.
func (c *SharedInline[I]) CopyFrom(src *SharedInline[I]) {
	if c == src {
		return
	}

	c.tracker = cmp.Or(c.tracker, src.tracker)

	tmp := SharedInline[I]{tracker: c.tracker}
	tmp.share(src)

	c.Swap(&tmp)
	tmp.Reset()
}

// MoveFrom transfers the holder of src to c. src is empty afterwards.
func (c *SharedInline[I]) MoveFrom(src *SharedInline[I]) {
	if c == src {
		return
	}

	c.tracker = cmp.Or(c.tracker, src.tracker)

	tmp := SharedInline[I]{tracker: c.tracker}
	tmp.Swap(src)

	c.Swap(&tmp)
	tmp.Reset()
}

func (c *SharedInline[I]) Swap(other *SharedInline[I]) {
	if c == other {
		return
	}

	swapHolders(
		&c.slot, &c.buf, c.heapAllocated(),
		&other.slot, &other.buf, other.heapAllocated(),
	)

	c.b, other.b = other.b, c.b
}

// Reset drops the reference of c to its holder. The holder is released
// when the last reference is dropped.
func (c *SharedInline[I]) Reset() {
	if c.b == nil {
		return
	}

	if counterAt(c.cell()).release() {
		if c.heapAllocated() {
			c.tracker.Free()
		} else {
			c.buf.clear(c.slot.offset, c.b.layout.sharedSize)
		}
	}

	c.b = nil
	c.slot = slot{}
}

func (c *SharedInline[I]) emplace(b *binding[I], src unsafe.Pointer) {
	tmp := SharedInline[I]{tracker: c.tracker}
	tmp.place(b, src)

	c.Swap(&tmp)
	tmp.Reset()
}

func (c *SharedInline[I]) holder(op string) (*binding[I], unsafe.Pointer) {
	assert.Bound(c.b != nil, op)
	return c.b, c.value()
}

// cell returns the address of the holder.
func (c *SharedInline[I]) cell() unsafe.Pointer {
	return c.slot.addr(&c.buf)
}

func (c *SharedInline[I]) value() unsafe.Pointer {
	return unsafe.Add(c.cell(), c.b.layout.sharedOffset)
}

// heapAllocated tests the address of the holder against the address range
// of the buffer. Empty containers count as heap allocated.
func (c *SharedInline[I]) heapAllocated() bool {
	if c.b == nil {
		return true
	}

	return !c.buf.contains(c.cell())
}

// share makes c reference the holder of src. c must be empty.
func (c *SharedInline[I]) share(src *SharedInline[I]) {
	if src.b == nil {
		return
	}

	if src.heapAllocated() {
		c.slot = src.slot
	} else {
		// the holder is only addressable relative to the buffer containing it
		offset := src.buf.offsetOf(src.cell())
		c.buf = src.buf
		c.slot = inlineSlot(offset)
	}

	c.b = src.b

	counterAt(c.cell()).retain()
}

// place constructs a new holder for a copy of the representation at src.
// c must be empty.
func (c *SharedInline[I]) place(b *binding[I], src unsafe.Pointer) {
	l := b.layout

	if offset, ok := c.buf.fit(l.sharedSize, l.sharedAlign, l.pointerFree); ok {
		cell := c.buf.at(offset)
		assert.Aligned(uintptr(cell), l.sharedAlign)

		counterAt(cell).init()
		l.copy(unsafe.Add(cell, l.sharedOffset), src)
		c.slot = inlineSlot(offset)
	} else {
		cell := l.newSharedCell(c.tracker)
		l.copy(unsafe.Add(cell, l.sharedOffset), src)
		c.slot = heapSlot(cell)
	}

	c.b = b
}
