package repository

import (
	"sync"

	"github.com/iliyamo/event-ticketing/internal/model"
)

// EventRepo stores events in insertion order and assigns sequential IDs.
// Events are never updated or deleted.
type EventRepo struct {
	mu     sync.RWMutex
	events []model.Event
}

// NewEventRepo returns an empty EventRepo.
func NewEventRepo() *EventRepo { return &EventRepo{} }

// Create appends a new event and returns it.  The ID is one greater than
// the largest existing ID, or 1 for the first event.
func (r *EventRepo) Create(name string, eventDates []string, details string) model.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, e := range r.events {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	ev := model.Event{
		ID:         maxID + 1,
		Name:       name,
		EventDates: append([]string(nil), eventDates...),
		Details:    details,
	}
	r.events = append(r.events, ev)
	return ev
}

// GetByID returns the event with the given ID or ErrEventNotFound.
func (r *EventRepo) GetByID(id int) (model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.events {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Event{}, ErrEventNotFound
}

// List returns a snapshot of all events in insertion order.
func (r *EventRepo) List() []model.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Event, len(r.events))
	copy(out, r.events)
	return out
}
