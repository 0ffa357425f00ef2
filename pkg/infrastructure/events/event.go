package events

import (
	"time"
)

// Event is one recorded change in a planner session or in the saved preferences
type Event interface {
	Type() string
	StreamID() string
	Data() interface{}
	Timestamp() time.Time
	Version() int
}

// EventHandler reacts to events it subscribed to
type EventHandler interface {
	Handle(event Event) error
	CanHandle(eventType string) bool
}

// EventHandlerFunc handles every event type it is subscribed to
type EventHandlerFunc func(event Event) error

func (f EventHandlerFunc) Handle(event Event) error { return f(event) }

func (f EventHandlerFunc) CanHandle(string) bool { return true }

// EventStore keeps the history of each stream. A session is one stream,
// keyed by its ID.
type EventStore interface {
	AppendEvent(streamID string, event Event) error
	ReadEvents(streamID string, fromVersion int) ([]Event, error)
	Subscribe(eventTypes []string, handler EventHandler) error
}

// record is the stored form of an event; Version is its 1-based position in the stream
type record struct {
	kind    string
	stream  string
	payload interface{}
	at      time.Time
	version int
}

func (r record) Type() string         { return r.kind }
func (r record) StreamID() string     { return r.stream }
func (r record) Data() interface{}    { return r.payload }
func (r record) Timestamp() time.Time { return r.at }
func (r record) Version() int         { return r.version }

// NewEvent creates an unversioned event; the store assigns the version on append
func NewEvent(eventType, streamID string, data interface{}) Event {
	return record{
		kind:    eventType,
		stream:  streamID,
		payload: data,
		at:      time.Now(),
	}
}
