package erasure

import (
	"reflect"
	"sync/atomic"
	"unsafe"

	"github.com/oliverbestmann/erasure/alloc"
	"github.com/oliverbestmann/erasure/internal/refl"
)

// refCount is the header of every shared cell.
type refCount struct {
	refs atomic.Int64
}

func counterAt(cell unsafe.Pointer) *refCount {
	return (*refCount)(cell)
}

func (r *refCount) init() {
	r.refs.Store(1)
}

func (r *refCount) retain() {
	r.refs.Add(1)
}

// release drops one reference and reports whether it was the last one.
func (r *refCount) release() bool {
	return r.refs.Add(-1) == 0
}

func (r *refCount) unique() bool {
	return r.refs.Load() == 1
}

// sharedCell is the holder of the copy-on-write strategies.
type sharedCell[R any] struct {
	refCount
	value R
}

// layout describes how a representation R is stored. R is either the
// payload type itself, or a pointer to it for reference bindings.
type layout struct {
	size  uintptr
	align uintptr

	// pointerFree representations can be relocated by copying their bytes,
	// and may live in the untyped memory of an inline buffer.
	pointerFree bool

	sharedSize   uintptr
	sharedAlign  uintptr
	sharedOffset uintptr

	copy          func(dst, src unsafe.Pointer)
	newCell       func(tracker *alloc.Tracker) unsafe.Pointer
	newSharedCell func(tracker *alloc.Tracker) unsafe.Pointer
}

func layoutOf[R any]() *layout {
	ty := reflect.TypeFor[R]()
	sharedTy := reflect.TypeFor[sharedCell[R]]()

	var cell sharedCell[R]

	return &layout{
		size:        ty.Size(),
		align:       uintptr(ty.Align()),
		pointerFree: !refl.HasPointers(ty),

		sharedSize:   sharedTy.Size(),
		sharedAlign:  uintptr(sharedTy.Align()),
		sharedOffset: unsafe.Offsetof(cell.value),

		copy: func(dst, src unsafe.Pointer) {
			*(*R)(dst) = *(*R)(src)
		},

		newCell: func(tracker *alloc.Tracker) unsafe.Pointer {
			return unsafe.Pointer(alloc.New[R](tracker))
		},

		newSharedCell: func(tracker *alloc.Tracker) unsafe.Pointer {
			cell := alloc.New[sharedCell[R]](tracker)
			cell.init()
			return unsafe.Pointer(cell)
		},
	}
}
