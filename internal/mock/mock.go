// Package mock provides payload types for tests.
package mock

const (
	Value      = 42
	OtherValue = 73
)

// Fooable is small and pointer free, it fits into every inline buffer.
type Fooable struct {
	value int
}

func New() Fooable {
	return Fooable{value: Value}
}

func (f *Fooable) Foo() int {
	return f.value
}

func (f *Fooable) SetValue(value int) {
	f.value = value
}

// Large does not fit into an inline buffer.
type Large struct {
	value   int
	padding [64]byte
}

func NewLarge() Large {
	return Large{value: Value}
}

func (f *Large) Foo() int {
	return f.value
}

func (f *Large) SetValue(value int) {
	f.value = value
	f.padding[0] = byte(value)
}

// Named is small, but contains a pointer and can therefore not be
// stored inline.
type Named struct {
	Name  string
	value int
}

func NewNamed(name string) Named {
	return Named{Name: name, value: Value}
}

func (f *Named) Foo() int {
	return f.value
}

func (f *Named) SetValue(value int) {
	f.value = value
}
