package metrics

import "time"

// Event is one observation: an HTTP request served, an alert triggered,
// a segment finalized.
type Event struct {
	Name   string
	Time   time.Time
	Value  float64
	Tags   map[string]string
	Fields map[string]any
}

type Observer interface {
	RecordEvent(ev Event)
}

type NoopObserver struct{}

func (NoopObserver) RecordEvent(Event) {}

// MultiObserver fans one event out to several observers.
type MultiObserver struct {
	observers []Observer
}

func NewMultiObserver(observers ...Observer) *MultiObserver {
	out := make([]Observer, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	return &MultiObserver{observers: out}
}

func (m *MultiObserver) RecordEvent(ev Event) {
	for _, o := range m.observers {
		o.RecordEvent(ev)
	}
}
