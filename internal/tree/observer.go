package tree

type Event int8

const (
	EventInsert Event = iota
	EventDuplicate
	// EventRecolor: red uncle, the violation moves up to the grandparent.
	EventRecolor
	// EventRotateInner: black uncle and an inner child, turned into the outer case.
	EventRotateInner
	// EventRotateOuter: black uncle and an outer child, ends the fixup.
	EventRotateOuter
)

var Events = []Event{EventInsert, EventDuplicate, EventRecolor, EventRotateInner, EventRotateOuter}

func (e Event) String() string {
	switch e {
	case EventInsert:
		return "insert"
	case EventDuplicate:
		return "duplicate"
	case EventRecolor:
		return "recolor"
	case EventRotateInner:
		return "rotate_inner"
	case EventRotateOuter:
		return "rotate_outer"
	default:
		return "unknown"
	}
}

// Observer is told about every insert outcome and every fixup step.
// Observe runs synchronously on the inserting goroutine.
type Observer interface {
	Observe(Event)
}

type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) {
	f(e)
}

type Option func(*options)

type options struct {
	observer Observer
}

func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

func (t *RedBlack[T]) observe(e Event) {
	if t.observer != nil {
		t.observer.Observe(e)
	}
}
