package erasure

import "unsafe"

// Capacity is the size in bytes of the inline buffer of the Inline and
// SharedInline containers.
const Capacity = 24

const bufferAlign = 8

// buffer is the inline storage of a container. It is backed by words to
// guarantee an alignment of bufferAlign.
type buffer [Capacity / bufferAlign]uint64

func (b *buffer) at(offset uintptr) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(b), offset)
}

func (b *buffer) bytes() *[Capacity]byte {
	return (*[Capacity]byte)(unsafe.Pointer(b))
}

// contains reports whether ptr points into this buffer.
func (b *buffer) contains(ptr unsafe.Pointer) bool {
	start := uintptr(unsafe.Pointer(b))
	addr := uintptr(ptr)
	return addr >= start && addr < start+Capacity
}

// offsetOf returns the offset of ptr relative to the start of the buffer.
// ptr must point into the buffer.
func (b *buffer) offsetOf(ptr unsafe.Pointer) uintptr {
	return uintptr(ptr) - uintptr(unsafe.Pointer(b))
}

// fit returns the offset at which a value of the given size and alignment
// can be placed. Values containing pointers never fit, the garbage
// collector does not scan the buffer.
func (b *buffer) fit(size, align uintptr, pointerFree bool) (uintptr, bool) {
	if !pointerFree || align == 0 || align > bufferAlign {
		return 0, false
	}

	start := uintptr(unsafe.Pointer(b))
	offset := (start+align-1)&^(align-1) - start

	if offset+size > Capacity {
		return 0, false
	}

	return offset, true
}

// clear tears down the value stored at offset.
func (b *buffer) clear(offset, size uintptr) {
	clear(b.bytes()[offset : offset+size])
}

// slot locates a holder. A heap-resident holder is addressed by its cell,
// an inline-resident holder by its offset into the buffer of the container
// that owns the slot. An offset stays meaningful when the bytes of the
// buffer are moved to another buffer, an address would not.
type slot struct {
	cell   unsafe.Pointer
	offset uintptr
}

func heapSlot(cell unsafe.Pointer) slot {
	return slot{cell: cell}
}

func inlineSlot(offset uintptr) slot {
	return slot{offset: offset}
}

func (s slot) addr(buf *buffer) unsafe.Pointer {
	if s.cell != nil {
		return s.cell
	}

	return buf.at(s.offset)
}

// swapHolders exchanges the holders of two containers, relocating inline
// holders into the buffer of their new owner. aHeap and bHeap report
// whether the holder of a and b is heap-resident. An empty container counts
// as heap-resident with a nil cell.
func swapHolders(a *slot, aBuf *buffer, aHeap bool, b *slot, bBuf *buffer, bHeap bool) {
	switch {
	case aHeap && bHeap:
		*a, *b = *b, *a

	case aHeap:
		// save the offset before the bytes leave b
		offset := b.offset
		*b = *a
		*aBuf = *bBuf
		*a = inlineSlot(offset)

	case bHeap:
		offset := a.offset
		*a = *b
		*bBuf = *aBuf
		*b = inlineSlot(offset)

	default:
		aOffset, bOffset := a.offset, b.offset
		*aBuf, *bBuf = *bBuf, *aBuf
		*a = inlineSlot(bOffset)
		*b = inlineSlot(aOffset)
	}
}
