package table

import "github.com/wippyai/handle"

// Handle addresses a slot in a Table tagged with S.
type Handle[S comparable] = handle.Handle[S, handle.Generational]

// EventType identifies a slot lifecycle event.
type EventType uint8

const (
	EventInserted EventType = iota
	EventRemoved
)

func (t EventType) String() string {
	switch t {
	case EventInserted:
		return "inserted"
	case EventRemoved:
		return "removed"
	}
	return "unknown"
}

// Event describes a slot lifecycle change.
type Event[S comparable] struct {
	Value  any
	Handle Handle[S]
	Type   EventType
}

// Observer receives notifications about slot lifecycle events.
type Observer[S comparable] interface {
	OnSlotEvent(Event[S])
}

// Dropper is optionally implemented by stored values that need cleanup.
type Dropper interface {
	Drop()
}
