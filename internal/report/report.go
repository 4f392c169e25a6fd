// Package report measures the heap allocations of the storage strategies
// for a fixed sequence of container operations.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/oliverbestmann/erasure"
	"github.com/oliverbestmann/erasure/alloc"
	"github.com/oliverbestmann/erasure/printable"
)

// Row is the measurement of one operation.
type Row struct {
	Strategy  string
	Payload   string
	Operation string
	Stats     alloc.Stats
}

type container[C any] interface {
	*C
	erasure.Container[printable.Printable]
	CopyFrom(other *C)
	MoveFrom(other *C)
}

type payload struct {
	name string
	set  func(c erasure.Container[printable.Printable])
}

var payloads = []payload{
	{
		name: "Hi",
		set: func(c erasure.Container[printable.Printable]) {
			printable.Bind[printable.Hi]().Set(c, printable.Hi{})
		},
	},
	{
		name: "Bye",
		set: func(c erasure.Container[printable.Printable]) {
			printable.Bind[printable.Bye]().Set(c, printable.Bye{Name: "world"})
		},
	},
	{
		name: "Large",
		set: func(c erasure.Container[printable.Printable]) {
			printable.Bind[printable.Large]().Set(c, printable.Large{Id: 1})
		},
	},
}

// Run measures every operation for every strategy and payload using tracker.
func Run(tracker *alloc.Tracker) []Row {
	var rows []Row
	rows = append(rows, measure[printable.Heap](tracker, "Heap")...)
	rows = append(rows, measure[printable.Shared](tracker, "Shared")...)
	rows = append(rows, measure[printable.Inline](tracker, "Inline")...)
	rows = append(rows, measure[printable.SharedInline](tracker, "SharedInline")...)
	return rows
}

func measure[C any, P container[C]](tracker *alloc.Tracker, strategy string) []Row {
	var rows []Row

	record := func(payload, operation string, fn func()) {
		rows = append(rows, Row{
			Strategy:  strategy,
			Payload:   payload,
			Operation: operation,
			Stats:     tracker.Measure(fn),
		})
	}

	for _, p := range payloads {
		var a, b, moved C
		P(&a).Apply(erasure.WithTracker(tracker))
		P(&b).Apply(erasure.WithTracker(tracker))
		P(&moved).Apply(erasure.WithTracker(tracker))

		record(p.name, "construct", func() { p.set(P(&a)) })
		record(p.name, "copy", func() { P(&b).CopyFrom(&a) })
		record(p.name, "write", func() { P(&b).Write() })
		record(p.name, "move", func() { P(&moved).MoveFrom(&b) })
		record(p.name, "assign", func() { p.set(P(&moved)) })
		record(p.name, "reset", func() {
			P(&a).Reset()
			P(&moved).Reset()
		})
	}

	// copy a sequence of containers holding different payloads
	src := make([]C, len(payloads))
	dst := make([]C, len(payloads))
	for idx, p := range payloads {
		P(&src[idx]).Apply(erasure.WithTracker(tracker))
		p.set(P(&src[idx]))
	}

	record("all", "copy sequence", func() {
		for idx := range src {
			P(&dst[idx]).CopyFrom(&src[idx])
		}
	})

	for idx := range src {
		P(&src[idx]).Reset()
		P(&dst[idx]).Reset()
	}

	return rows
}

// Write prints rows as a table.
func Write(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "STRATEGY\tPAYLOAD\tOPERATION\tALLOCS\tFREES")
	for _, row := range rows {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n",
			row.Strategy, row.Payload, row.Operation, row.Stats.Allocs, row.Stats.Frees)
	}

	return tw.Flush()
}

// Print prints the payloads bound to a sequence of containers of every
// strategy. The output is the same for every strategy.
func Print(w io.Writer) {
	printAll[printable.Heap](w)
	printAll[printable.Shared](w)
	printAll[printable.Inline](w)
	printAll[printable.SharedInline](w)
}

func printAll[C any, P container[C]](w io.Writer) {
	values := make([]C, len(payloads))
	for idx, p := range payloads {
		p.set(P(&values[idx]))
	}

	for idx := range values {
		P(&values[idx]).Read().Print(w)
		P(&values[idx]).Reset()
	}
}
