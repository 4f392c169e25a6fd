package erasure

import "github.com/oliverbestmann/erasure/alloc"

type Options struct {
	// Tracker records the heap cells a container allocates and releases.
	// It belongs to the container, not to its cells: Swap and MoveFrom
	// leave it in place, and a cell is recorded as freed on the tracker of
	// the container that releases it.
	Tracker *alloc.Tracker
}

type Option func(*Options)

// WithTracker attaches an allocation tracker to a container.
func WithTracker(tracker *alloc.Tracker) Option {
	return func(o *Options) {
		o.Tracker = tracker
	}
}

func applyOptions(tracker **alloc.Tracker, opts []Option) {
	options := Options{Tracker: *tracker}
	for _, opt := range opts {
		opt(&options)
	}

	*tracker = options.Tracker
}
