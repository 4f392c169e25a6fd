package fooable_test

import (
	"sync"
	"testing"

	"github.com/oliverbestmann/erasure"
	"github.com/oliverbestmann/erasure/alloc"
	"github.com/oliverbestmann/erasure/fooable"
	"github.com/oliverbestmann/erasure/internal/mock"
	"github.com/stretchr/testify/require"
)

func TestEmptyContainerPanics(t *testing.T) {
	containers := map[string]erasure.Container[fooable.Fooable]{
		"Heap":         new(fooable.Heap),
		"Shared":       new(fooable.Shared),
		"Inline":       new(fooable.Inline),
		"SharedInline": new(fooable.SharedInline),
	}

	for name, c := range containers {
		t.Run(name, func(t *testing.T) {
			require.True(t, c.Empty())
			require.Nil(t, c.Type())

			require.PanicsWithError(t, "erasure: Read: container is empty", func() { c.Read() })
			require.PanicsWithError(t, "erasure: Write: container is empty", func() { c.Write() })
			require.PanicsWithError(t, "erasure: Cast: container is empty", func() {
				fooable.Cast[mock.Fooable](c)
			})

			// resetting an empty container is fine
			require.NotPanics(t, c.Reset)
		})
	}
}

func TestViolationErrorWrapsErrEmpty(t *testing.T) {
	c := new(fooable.Heap)

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		require.ErrorIs(t, err, erasure.ErrEmpty)

		var violation *erasure.ViolationError
		require.ErrorAs(t, err, &violation)
		require.Equal(t, "Write", violation.Op)
	}()

	c.SetValue(mock.OtherValue)
}

func TestHeap(t *testing.T) {
	tracker := alloc.NewTracker()

	var a *fooable.Heap
	stats := tracker.Measure(func() {
		a = fooable.NewHeap(mock.New(), erasure.WithTracker(tracker))
	})

	require.Equal(t, alloc.Stats{Allocs: 1}, stats)
	require.Equal(t, mock.Value, a.Foo())

	var b fooable.Heap
	stats = tracker.Measure(func() { b.CopyFrom(a) })

	require.Equal(t, alloc.Stats{Allocs: 1}, stats)
	require.Equal(t, mock.Value, b.Foo())

	stats = tracker.Measure(func() { b.SetValue(mock.OtherValue) })

	require.Equal(t, alloc.Stats{}, stats)
	require.Equal(t, mock.Value, a.Foo())
	require.Equal(t, mock.OtherValue, b.Foo())

	stats = tracker.Measure(func() {
		b.Reset()
		a.Reset()
	})

	require.Equal(t, alloc.Stats{Frees: 2}, stats)
	require.True(t, a.Empty())
	require.True(t, b.Empty())
}

func TestHeapMoveFrom(t *testing.T) {
	tracker := alloc.NewTracker()

	a := fooable.NewHeap(mock.New(), erasure.WithTracker(tracker))
	b := fooable.NewHeap(mock.NewLarge(), erasure.WithTracker(tracker))

	stats := tracker.Measure(func() { b.MoveFrom(a) })

	// the previous value of b is released, the cell of a changes owner
	require.Equal(t, alloc.Stats{Frees: 1}, stats)
	require.True(t, a.Empty())
	require.Equal(t, mock.Value, b.Foo())
	require.Same(t, erasure.TypeOf[mock.Fooable](), b.Type())
}

func TestShared(t *testing.T) {
	tracker := alloc.NewTracker()

	a := fooable.NewShared(mock.New(), erasure.WithTracker(tracker))
	require.EqualValues(t, 1, a.UseCount())

	var b fooable.Shared
	stats := tracker.Measure(func() { b.CopyFrom(a) })

	require.Equal(t, alloc.Stats{}, stats)
	require.EqualValues(t, 2, a.UseCount())
	require.EqualValues(t, 2, b.UseCount())

	// reading never copies
	stats = tracker.Measure(func() { require.Equal(t, mock.Value, b.Foo()) })
	require.Equal(t, alloc.Stats{}, stats)

	// the first write detaches b
	stats = tracker.Measure(func() { b.SetValue(mock.OtherValue) })

	require.Equal(t, alloc.Stats{Allocs: 1}, stats)
	require.True(t, a.Unique())
	require.True(t, b.Unique())
	require.Equal(t, mock.Value, a.Foo())
	require.Equal(t, mock.OtherValue, b.Foo())

	// b is unique now, writing does not copy anymore
	stats = tracker.Measure(func() { b.SetValue(99) })

	require.Equal(t, alloc.Stats{}, stats)
	require.Equal(t, 99, b.Foo())
}

func TestSharedReleasesOnLastReset(t *testing.T) {
	tracker := alloc.NewTracker()

	a := fooable.NewShared(mock.New(), erasure.WithTracker(tracker))

	var b fooable.Shared
	b.CopyFrom(a)

	stats := tracker.Measure(a.Reset)
	require.Equal(t, alloc.Stats{}, stats)
	require.True(t, b.Unique())

	stats = tracker.Measure(b.Reset)
	require.Equal(t, alloc.Stats{Frees: 1}, stats)
}

func TestSharedConcurrentCopies(t *testing.T) {
	base := fooable.NewShared(mock.New())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var c fooable.Shared
			for range 1000 {
				c.CopyFrom(base)
				c.Reset()
			}
		}()
	}

	wg.Wait()

	require.True(t, base.Unique())
	require.Equal(t, mock.Value, base.Foo())
}

func TestInline(t *testing.T) {
	tracker := alloc.NewTracker()

	var a *fooable.Inline
	stats := tracker.Measure(func() {
		a = fooable.NewInline(mock.New(), erasure.WithTracker(tracker))
	})

	require.Equal(t, alloc.Stats{}, stats)
	require.True(t, a.Inlined())

	var b fooable.Inline
	stats = tracker.Measure(func() {
		b.CopyFrom(a)
		b.SetValue(mock.OtherValue)
	})

	require.Equal(t, alloc.Stats{}, stats)
	require.Equal(t, mock.Value, a.Foo())
	require.Equal(t, mock.OtherValue, b.Foo())
}

func TestInlineFallsBackToHeap(t *testing.T) {
	tracker := alloc.NewTracker()

	stats := tracker.Measure(func() {
		large := fooable.NewInline(mock.NewLarge(), erasure.WithTracker(tracker))
		require.False(t, large.Inlined())
		require.Equal(t, mock.Value, large.Foo())

		named := fooable.NewInline(mock.NewNamed("test"), erasure.WithTracker(tracker))
		require.False(t, named.Inlined())
		require.Equal(t, mock.Value, named.Foo())
	})

	require.Equal(t, alloc.Stats{Allocs: 2}, stats)
}

func TestInlineSwap(t *testing.T) {
	tracker := alloc.NewTracker()

	small := fooable.NewInline(mock.New(), erasure.WithTracker(tracker))
	large := fooable.NewInline(mock.NewLarge(), erasure.WithTracker(tracker))
	large.SetValue(mock.OtherValue)

	stats := tracker.Measure(func() { small.Swap(large) })
	require.Equal(t, alloc.Stats{}, stats)

	require.False(t, small.Inlined())
	require.Equal(t, mock.OtherValue, small.Foo())
	require.Same(t, erasure.TypeOf[mock.Large](), small.Type())

	require.True(t, large.Inlined())
	require.Equal(t, mock.Value, large.Foo())
	require.Same(t, erasure.TypeOf[mock.Fooable](), large.Type())

	// swap two inline values
	other := fooable.NewInline(mock.New(), erasure.WithTracker(tracker))
	other.SetValue(7)

	large.Swap(other)
	require.Equal(t, 7, large.Foo())
	require.Equal(t, mock.Value, other.Foo())

	// swap with an empty container
	var empty fooable.Inline
	empty.Swap(other)
	require.True(t, other.Empty())
	require.True(t, empty.Inlined())
	require.Equal(t, mock.Value, empty.Foo())
}

func TestInlineMoveFrom(t *testing.T) {
	tracker := alloc.NewTracker()

	a := fooable.NewInline(mock.New(), erasure.WithTracker(tracker))

	var b fooable.Inline
	stats := tracker.Measure(func() { b.MoveFrom(a) })

	require.Equal(t, alloc.Stats{}, stats)
	require.True(t, a.Empty())
	require.False(t, a.Inlined())
	require.True(t, b.Inlined())
	require.Equal(t, mock.Value, b.Foo())
}

func TestSharedInline(t *testing.T) {
	tracker := alloc.NewTracker()

	var a *fooable.SharedInline
	stats := tracker.Measure(func() {
		a = fooable.NewSharedInline(mock.New(), erasure.WithTracker(tracker))
	})

	require.Equal(t, alloc.Stats{}, stats)
	require.True(t, a.Inlined())
	require.True(t, a.Unique())

	var b fooable.SharedInline
	stats = tracker.Measure(func() { b.CopyFrom(a) })

	require.Equal(t, alloc.Stats{}, stats)
	require.True(t, b.Inlined())

	// the copy carries the incremented count, the source keeps its own
	require.EqualValues(t, 2, b.UseCount())
	require.EqualValues(t, 1, a.UseCount())

	// cloning an inline holder happens in place
	stats = tracker.Measure(func() { b.SetValue(mock.OtherValue) })

	require.Equal(t, alloc.Stats{}, stats)
	require.True(t, b.Unique())
	require.Equal(t, mock.Value, a.Foo())
	require.Equal(t, mock.OtherValue, b.Foo())
}

func TestSharedInlineOnHeap(t *testing.T) {
	tracker := alloc.NewTracker()

	a := fooable.NewSharedInline(mock.NewLarge(), erasure.WithTracker(tracker))
	require.False(t, a.Inlined())

	var b fooable.SharedInline
	stats := tracker.Measure(func() { b.CopyFrom(a) })

	require.Equal(t, alloc.Stats{}, stats)
	require.EqualValues(t, 2, a.UseCount())
	require.EqualValues(t, 2, b.UseCount())

	stats = tracker.Measure(func() { b.SetValue(mock.OtherValue) })

	require.Equal(t, alloc.Stats{Allocs: 1}, stats)
	require.True(t, a.Unique())
	require.Equal(t, mock.Value, a.Foo())
	require.Equal(t, mock.OtherValue, b.Foo())

	stats = tracker.Measure(func() {
		a.Reset()
		b.Reset()
	})

	require.Equal(t, alloc.Stats{Frees: 2}, stats)
}

func TestSharedInlineSwapAndMove(t *testing.T) {
	small := fooable.NewSharedInline(mock.New())
	large := fooable.NewSharedInline(mock.NewLarge())
	large.SetValue(mock.OtherValue)

	small.Swap(large)
	require.False(t, small.Inlined())
	require.True(t, large.Inlined())
	require.Equal(t, mock.OtherValue, small.Foo())
	require.Equal(t, mock.Value, large.Foo())

	var moved fooable.SharedInline
	moved.MoveFrom(large)
	require.True(t, large.Empty())
	require.True(t, moved.Inlined())
	require.True(t, moved.Unique())
	require.Equal(t, mock.Value, moved.Foo())

	// the relocated holder is still writable in place
	moved.SetValue(3)
	require.Equal(t, 3, moved.Foo())
}

func TestCast(t *testing.T) {
	containers := map[string]erasure.Container[fooable.Fooable]{
		"Heap":         fooable.NewHeap(mock.New()),
		"Shared":       fooable.NewShared(mock.New()),
		"Inline":       fooable.NewInline(mock.New()),
		"SharedInline": fooable.NewSharedInline(mock.New()),
	}

	for name, c := range containers {
		t.Run(name, func(t *testing.T) {
			value, ok := fooable.Cast[mock.Fooable](c)
			require.True(t, ok)
			require.Equal(t, mock.Value, value.Foo())

			// the cast exposes the bound value itself
			value.SetValue(mock.OtherValue)
			require.Equal(t, mock.OtherValue, c.Read().Foo())

			large, ok := fooable.Cast[mock.Large](c)
			require.False(t, ok)
			require.Nil(t, large)
		})
	}
}

func TestRefBinding(t *testing.T) {
	tracker := alloc.NewTracker()

	value := mock.New()

	containers := map[string]erasure.Container[fooable.Fooable]{
		"Heap":         fooable.NewHeapRef(&value, erasure.WithTracker(tracker)),
		"Shared":       fooable.NewSharedRef(&value, erasure.WithTracker(tracker)),
		"Inline":       fooable.NewInlineRef(&value, erasure.WithTracker(tracker)),
		"SharedInline": fooable.NewSharedInlineRef(&value, erasure.WithTracker(tracker)),
	}

	for name, c := range containers {
		t.Run(name, func(t *testing.T) {
			value.SetValue(mock.Value)

			require.Same(t, erasure.TypeOf[mock.Fooable](), c.Type())

			c.Write().SetValue(mock.OtherValue)
			require.Equal(t, mock.OtherValue, value.Foo())

			value.SetValue(5)
			require.Equal(t, 5, c.Read().Foo())

			ptr, ok := fooable.Cast[mock.Fooable](c)
			require.True(t, ok)
			require.Same(t, &value, ptr)
		})
	}
}

func TestRefBindingSurvivesCopy(t *testing.T) {
	value := mock.New()

	a := fooable.NewSharedRef(&value)

	var b fooable.Shared
	b.CopyFrom(a)

	// writing through the copy detaches the reference, not the value
	b.SetValue(mock.OtherValue)
	require.Equal(t, mock.OtherValue, value.Foo())
	require.Equal(t, mock.OtherValue, a.Foo())

	c := fooable.NewInlineRef(&value)

	var d fooable.Inline
	d.CopyFrom(c)
	d.SetValue(1)
	require.Equal(t, 1, value.Foo())
}

func TestRebind(t *testing.T) {
	tracker := alloc.NewTracker()

	c := fooable.NewInline(mock.NewLarge(), erasure.WithTracker(tracker))

	stats := tracker.Measure(func() {
		fooable.Bind[mock.Fooable]().Set(c, mock.New())
	})

	require.Equal(t, alloc.Stats{Frees: 1}, stats)
	require.True(t, c.Inlined())
	require.Same(t, erasure.TypeOf[mock.Fooable](), c.Type())
}

func TestSetRefNilPanics(t *testing.T) {
	c := new(fooable.Heap)
	require.Panics(t, func() {
		fooable.Bind[mock.Fooable]().SetRef(c, nil)
	})
}

func BenchmarkCopy(b *testing.B) {
	b.Run("Heap", func(b *testing.B) {
		src := fooable.NewHeap(mock.New())

		var dst fooable.Heap

		b.ReportAllocs()
		for b.Loop() {
			dst.CopyFrom(src)
		}
	})

	b.Run("Shared", func(b *testing.B) {
		src := fooable.NewShared(mock.New())

		var dst fooable.Shared

		b.ReportAllocs()
		for b.Loop() {
			dst.CopyFrom(src)
		}
	})

	b.Run("Inline", func(b *testing.B) {
		src := fooable.NewInline(mock.New())

		var dst fooable.Inline

		b.ReportAllocs()
		for b.Loop() {
			dst.CopyFrom(src)
		}
	})

	b.Run("SharedInline", func(b *testing.B) {
		src := fooable.NewSharedInline(mock.New())

		var dst fooable.SharedInline

		b.ReportAllocs()
		for b.Loop() {
			dst.CopyFrom(src)
		}
	})
}

func BenchmarkRead(b *testing.B) {
	c := fooable.NewInline(mock.New())

	b.ReportAllocs()

	var sum int
	for b.Loop() {
		sum += c.Foo()
	}
}

// scenario binds 42, writes 73, copies the container and writes 99 to the
// copy. It returns the allocation counts of each of the four steps.
func scenario[C any, P interface {
	*C
	fooable.Fooable
	erasure.Container[fooable.Fooable]
	CopyFrom(other *C)
}](t *testing.T) []int64 {
	tracker := alloc.NewTracker()

	var a, b C
	P(&a).Apply(erasure.WithTracker(tracker))

	steps := []func(){
		func() { fooable.Bind[mock.Fooable]().Set(P(&a), mock.New()) },
		func() { P(&a).SetValue(mock.OtherValue) },
		func() { P(&b).CopyFrom(&a) },
		func() { P(&b).SetValue(99) },
	}

	var allocs []int64
	for _, step := range steps {
		allocs = append(allocs, tracker.Measure(step).Allocs)
	}

	require.Equal(t, mock.OtherValue, P(&a).Foo())
	require.Equal(t, 99, P(&b).Foo())

	return allocs
}

func TestScenario(t *testing.T) {
	t.Run("Heap", func(t *testing.T) {
		require.Equal(t, []int64{1, 0, 1, 0}, scenario[fooable.Heap](t))
	})

	t.Run("Shared", func(t *testing.T) {
		require.Equal(t, []int64{1, 0, 0, 1}, scenario[fooable.Shared](t))
	})

	t.Run("Inline", func(t *testing.T) {
		require.Equal(t, []int64{0, 0, 0, 0}, scenario[fooable.Inline](t))
	})

	t.Run("SharedInline", func(t *testing.T) {
		require.Equal(t, []int64{0, 0, 0, 0}, scenario[fooable.SharedInline](t))
	})
}

func TestEmptyContainersNeverAllocate(t *testing.T) {
	tracker := alloc.NewTracker()

	stats := tracker.Measure(func() {
		var heapA, heapB fooable.Heap
		heapA.Apply(erasure.WithTracker(tracker))
		heapB.CopyFrom(&heapA)
		heapB.MoveFrom(&heapA)
		heapA.Swap(&heapB)

		var sharedA, sharedB fooable.Shared
		sharedA.Apply(erasure.WithTracker(tracker))
		sharedB.CopyFrom(&sharedA)
		sharedB.MoveFrom(&sharedA)

		var inlineA, inlineB fooable.Inline
		inlineA.Apply(erasure.WithTracker(tracker))
		inlineB.CopyFrom(&inlineA)
		inlineB.MoveFrom(&inlineA)
		inlineA.Swap(&inlineB)

		var bothA, bothB fooable.SharedInline
		bothA.Apply(erasure.WithTracker(tracker))
		bothB.CopyFrom(&bothA)
		bothB.MoveFrom(&bothA)
		bothA.Swap(&bothB)

		require.True(t, heapB.Empty())
		require.True(t, sharedB.Empty())
		require.True(t, inlineB.Empty())
		require.True(t, bothB.Empty())
	})

	require.Equal(t, alloc.Stats{}, stats)
}

type movable[C any] interface {
	*C
	fooable.Fooable
	erasure.Container[fooable.Fooable]
	CopyFrom(other *C)
	MoveFrom(other *C)
}

// moveShared copies a bound value into src so both share it where the
// strategy shares, then moves src into a third container.
func moveShared[C any, P movable[C]](t *testing.T, useCount func(*C) int64) {
	tracker := alloc.NewTracker()

	var original, src, moved C
	P(&original).Apply(erasure.WithTracker(tracker))

	fooable.Bind[mock.Large]().Set(P(&original), mock.NewLarge())
	P(&src).CopyFrom(&original)

	stats := tracker.Measure(func() { P(&moved).MoveFrom(&src) })
	require.Equal(t, alloc.Stats{}, stats)

	require.True(t, P(&src).Empty())
	require.PanicsWithError(t, "erasure: Read: container is empty", func() { P(&src).Foo() })
	require.PanicsWithError(t, "erasure: Write: container is empty", func() { P(&src).SetValue(1) })

	require.Equal(t, mock.Value, P(&moved).Foo())
	require.Same(t, erasure.TypeOf[mock.Large](), P(&moved).Type())

	if useCount != nil {
		require.EqualValues(t, 2, useCount(&original))
		require.EqualValues(t, 2, useCount(&moved))
	}

	// writing to the moved container detaches it from the original
	P(&moved).SetValue(mock.OtherValue)
	require.Equal(t, mock.OtherValue, P(&moved).Foo())
	require.Equal(t, mock.Value, P(&original).Foo())
}

func TestMoveEmptiesSource(t *testing.T) {
	t.Run("Heap", func(t *testing.T) {
		moveShared[fooable.Heap](t, nil)
	})

	t.Run("Shared", func(t *testing.T) {
		moveShared[fooable.Shared](t, func(c *fooable.Shared) int64 { return c.UseCount() })
	})

	t.Run("Inline", func(t *testing.T) {
		moveShared[fooable.Inline](t, nil)
	})

	t.Run("SharedInline", func(t *testing.T) {
		moveShared[fooable.SharedInline](t, func(c *fooable.SharedInline) int64 { return c.UseCount() })
	})
}

func TestSwapBound(t *testing.T) {
	t.Run("Heap", func(t *testing.T) {
		small := fooable.NewHeap(mock.New())
		large := fooable.NewHeap(mock.NewLarge())
		large.SetValue(mock.OtherValue)

		small.Swap(large)

		require.Equal(t, mock.OtherValue, small.Foo())
		require.Same(t, erasure.TypeOf[mock.Large](), small.Type())
		require.Equal(t, mock.Value, large.Foo())
		require.Same(t, erasure.TypeOf[mock.Fooable](), large.Type())
	})

	t.Run("Shared", func(t *testing.T) {
		small := fooable.NewShared(mock.New())
		large := fooable.NewShared(mock.NewLarge())
		large.SetValue(mock.OtherValue)

		var sharer fooable.Shared
		sharer.CopyFrom(large)

		small.Swap(large)

		require.Equal(t, mock.OtherValue, small.Foo())
		require.Same(t, erasure.TypeOf[mock.Large](), small.Type())
		require.EqualValues(t, 2, small.UseCount())
		require.EqualValues(t, 2, sharer.UseCount())

		require.Equal(t, mock.Value, large.Foo())
		require.True(t, large.Unique())
	})
}

func TestSwapKeepsTrackers(t *testing.T) {
	tracker := alloc.NewTracker()

	tracked := fooable.NewHeap(mock.New(), erasure.WithTracker(tracker))
	untracked := fooable.NewHeap(mock.NewLarge())

	tracked.Swap(untracked)

	// the cell allocated under tracker is released by the untracked container
	stats := tracker.Measure(untracked.Reset)
	require.Equal(t, alloc.Stats{}, stats)

	stats = tracker.Measure(tracked.Reset)
	require.Equal(t, alloc.Stats{Frees: 1}, stats)
}
