package ecs

// EventKind identifies what happened.
type EventKind string

const (
	// EventEndGame asks the session to leave Playing.
	EventEndGame EventKind = "end_game"
	// EventPrefabChanged carries the name of a reloaded prefab file.
	EventPrefabChanged EventKind = "prefab_changed"
)

// Event is a generic ECS event payload.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue drained by whoever owns the tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
