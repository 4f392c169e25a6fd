package printable

import (
	"fmt"
	"io"
)

// Hi is a zero sized payload, it always fits into an inline buffer.
type Hi struct{}

func (Hi) Print(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Hello, world!")
}

// Bye carries a string. Strings contain a pointer, Bye is never
// stored inline.
type Bye struct {
	Name string
}

func (b Bye) Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Goodbye, %s!\n", b.Name)
}

// Large is too large for any inline buffer.
type Large struct {
	Id    int
	bytes [1024]byte
}

func (l *Large) Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Large #%d (%d bytes)\n", l.Id, len(l.bytes))
}
