package racer

import "github.com/vovakirdan/neon-highway/internal/core"

// eventLog collects the events raised during one step.
type eventLog []core.Event

func (l *eventLog) emit(kind core.EventKind, detail string, value int) {
	*l = append(*l, core.Event{Kind: kind, Detail: detail, Value: value})
}
