package erasure

import (
	"log/slog"
	"reflect"
	"unsafe"

	"github.com/oliverbestmann/erasure/internal/refl"
)

type TypeId uint32

// Type describes a payload type. Every payload type has exactly one Type,
// the pointer identity of the Type is used to match downcasts.
type Type struct {
	Name string
	Type reflect.Type

	Size  uintptr
	Align uintptr

	Id TypeId

	// HasPointers indicates that a value of the type contains pointers, e.g.
	// by having a field of type *T, a string, a slice or a map value.
	// Values with pointers are never stored inline.
	HasPointers bool
}

func (t *Type) String() string {
	return t.Name
}

var types registry[unsafe.Pointer, *Type]

// TypeOf returns the Type of T.
func TypeOf[T any]() *Type {
	reflectType := reflect.TypeFor[T]()
	ptrToType := abiTypePointerTo(reflectType)

	if cached, ok := types.lookup(ptrToType); ok {
		return cached
	}

	ty, created := types.ensure(ptrToType, func(count int) *Type {
		return &Type{
			Id:          TypeId(count + 1),
			Name:        reflectType.String(),
			Type:        reflectType,
			Size:        reflectType.Size(),
			Align:       uintptr(reflectType.Align()),
			HasPointers: refl.HasPointers(reflectType),
		}
	})

	if created {
		slog.Debug(
			"New payload type registered",
			slog.String("name", ty.Name),
			slog.Int("id", int(ty.Id)),
			slog.Bool("hasPointers", ty.HasPointers),
		)
	}

	return ty
}

func abiTypePointerTo(t reflect.Type) unsafe.Pointer {
	type eface struct {
		typ, val unsafe.Pointer
	}

	// a reflect.Type is backed by an *rType. The rType contains a abi.Type as
	// its first value. This means, that a *rType can be re-interpreted as *abi.Type
	return (*eface)(unsafe.Pointer(&t)).val
}
