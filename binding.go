package erasure

import (
	"reflect"
	"unsafe"
)

// binding is the dispatch table of one payload type for contract I. A holder
// is a binding plus the memory holding the representation.
type binding[I any] struct {
	typ    *Type
	layout *layout

	// ref is set for bindings that hold a pointer to an externally owned value
	ref bool

	// view exposes the representation at the given address as I
	view func(unsafe.Pointer) I

	// target returns the address of the payload value
	target func(unsafe.Pointer) unsafe.Pointer
}

// Binder binds payload type T to contract I.
type Binder[T, I any] struct {
	value *binding[I]
	ref   *binding[I]
}

type binderKey struct {
	payload  *Type
	contract reflect.Type
}

var binders registry[binderKey, any]

// Bind returns the Binder of T for contract I. view converts a pointer to
// a payload value into the contract, it is usually the identity conversion
// of *T to I. Binders are cached, view is only used by the first call for
// each pair of T and I.
func Bind[T, I any](view func(*T) I) Binder[T, I] {
	key := binderKey{
		payload:  TypeOf[T](),
		contract: reflect.TypeFor[I](),
	}

	if cached, ok := binders.lookup(key); ok {
		return cached.(Binder[T, I])
	}

	binder, _ := binders.ensure(key, func(int) any {
		return makeBinder(key.payload, view)
	})

	return binder.(Binder[T, I])
}

func makeBinder[T, I any](ty *Type, view func(*T) I) Binder[T, I] {
	value := &binding[I]{
		typ:    ty,
		layout: layoutOf[T](),

		view: func(ptr unsafe.Pointer) I {
			return view((*T)(ptr))
		},

		target: func(ptr unsafe.Pointer) unsafe.Pointer {
			return ptr
		},
	}

	ref := &binding[I]{
		typ:    ty,
		layout: layoutOf[*T](),
		ref:    true,

		view: func(ptr unsafe.Pointer) I {
			return view(*(**T)(ptr))
		},

		target: func(ptr unsafe.Pointer) unsafe.Pointer {
			return unsafe.Pointer(*(**T)(ptr))
		},
	}

	return Binder[T, I]{value: value, ref: ref}
}

// Type returns the Type of T.
func (b Binder[T, I]) Type() *Type {
	return b.value.typ
}

// Set binds a copy of value to c, releasing the value c held before.
func (b Binder[T, I]) Set(c Container[I], value T) {
	c.emplace(b.value, unsafe.Pointer(&value))
}

// SetRef binds c to the value ref points to. Mutations through c are
// visible through ref and vice versa.
func (b Binder[T, I]) SetRef(c Container[I], ref *T) {
	if ref == nil {
		panic("erasure: SetRef called with a nil reference")
	}

	c.emplace(b.ref, unsafe.Pointer(&ref))
}
