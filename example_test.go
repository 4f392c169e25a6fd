package erasure_test

import (
	"fmt"
	"os"

	"github.com/oliverbestmann/erasure"
	"github.com/oliverbestmann/erasure/alloc"
	"github.com/oliverbestmann/erasure/printable"
)

func Example() {
	tracker := alloc.NewTracker()

	hi := printable.NewSharedInline(printable.Hi{}, erasure.WithTracker(tracker))
	large := printable.NewSharedInline(printable.Large{Id: 7}, erasure.WithTracker(tracker))

	var copied printable.SharedInline
	copied.CopyFrom(large)

	hi.Print(os.Stdout)
	copied.Print(os.Stdout)

	fmt.Println(hi.Inlined(), large.Inlined(), copied.UseCount())
	fmt.Printf("%+v\n", tracker.End())

	// Output:
	// Hello, world!
	// Large #7 (1024 bytes)
	// true false 2
	// {Allocs:1 Frees:0}
}
