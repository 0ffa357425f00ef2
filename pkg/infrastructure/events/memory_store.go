package events

import (
	"log"
	"os"
	"sync"
)

// InMemoryEventStore keeps planner session history for the lifetime of the process.
// Subscribers are notified synchronously, in subscription order, before
// AppendEvent returns.
type InMemoryEventStore struct {
	streams     map[string][]Event
	subscribers map[string][]EventHandler
	mutex       sync.RWMutex
	logger      *log.Logger
}

func NewInMemoryEventStore() *InMemoryEventStore {
	return NewInMemoryEventStoreWithLogger(log.New(os.Stderr, "[churrasco] ", log.LstdFlags))
}

// NewInMemoryEventStoreWithLogger reports handler failures to logger
func NewInMemoryEventStoreWithLogger(logger *log.Logger) *InMemoryEventStore {
	return &InMemoryEventStore{
		streams:     make(map[string][]Event),
		subscribers: make(map[string][]EventHandler),
		logger:      logger,
	}
}

func (s *InMemoryEventStore) AppendEvent(streamID string, event Event) error {
	s.mutex.Lock()

	eventWithVersion := record{
		kind:    event.Type(),
		stream:  streamID,
		payload: event.Data(),
		at:      event.Timestamp(),
		version: len(s.streams[streamID]) + 1,
	}

	s.streams[streamID] = append(s.streams[streamID], eventWithVersion)
	handlers := append([]EventHandler(nil), s.subscribers[event.Type()]...)

	s.mutex.Unlock()

	s.notify(handlers, eventWithVersion)
	return nil
}

func (s *InMemoryEventStore) ReadEvents(streamID string, fromVersion int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events, exists := s.streams[streamID]
	if !exists {
		return []Event{}, nil
	}

	if fromVersion < 1 {
		fromVersion = 1
	}

	if fromVersion > len(events) {
		return []Event{}, nil
	}

	return append([]Event(nil), events[fromVersion-1:]...), nil
}

func (s *InMemoryEventStore) Subscribe(eventTypes []string, handler EventHandler) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, eventType := range eventTypes {
		s.subscribers[eventType] = append(s.subscribers[eventType], handler)
	}

	return nil
}

func (s *InMemoryEventStore) notify(handlers []EventHandler, event Event) {
	for _, handler := range handlers {
		if !handler.CanHandle(event.Type()) {
			continue
		}
		if err := handler.Handle(event); err != nil {
			s.logger.Printf("error handling event %s: %v", event.Type(), err)
		}
	}
}
