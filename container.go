package erasure

import (
	"unsafe"

	"github.com/oliverbestmann/erasure/internal/assert"
)

// ErrEmpty is wrapped by the ViolationError every operation panics with
// when it requires a bound value but the container is empty.
var ErrEmpty = assert.ErrEmpty

type ViolationError = assert.ViolationError

// Container is implemented by the four storage strategies.
type Container[I any] interface {
	// Empty reports whether no value is bound.
	Empty() bool

	// Type returns the type of the bound value, or nil if empty.
	Type() *Type

	// Read exposes the bound value for operations that do not modify it.
	Read() I

	// Write exposes the bound value for operations that modify it.
	Write() I

	// Reset releases the bound value. The container is empty afterwards.
	Reset()

	Apply(opts ...Option)

	emplace(b *binding[I], src unsafe.Pointer)
	holder(op string) (*binding[I], unsafe.Pointer)
}

// Cast returns a pointer to the bound value if its type is T. It reports
// false if the container holds a value of a different type. Cast panics if
// the container is empty.
//
// Cast never copies a shared value. Mutating a shared value through the
// returned pointer is visible to every container sharing it.
func Cast[T, I any](c Container[I]) (*T, bool) {
	b, ptr := c.holder("Cast")
	if b.typ != TypeOf[T]() {
		return nil, false
	}

	return (*T)(b.target(ptr)), true
}

var (
	_ Container[any] = (*Heap[any])(nil)
	_ Container[any] = (*Shared[any])(nil)
	_ Container[any] = (*Inline[any])(nil)
	_ Container[any] = (*SharedInline[any])(nil)
)
