package model

// Event is a named occurrence with one or more dates that can each be
// reserved against independently.  Events are immutable once created.
//
// Fields:
//  ID         – sequential identifier, starting at 1.
//  Name       – display name.
//  EventDates – valid dates for reservations, in the order they were given.
//  Details    – free-form description.
type Event struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	EventDates []string `json:"eventDates"`
	Details    string   `json:"details"`
}

// HasDate reports whether date is one of the event's dates.
func (e Event) HasDate(date string) bool {
	for _, d := range e.EventDates {
		if d == date {
			return true
		}
	}
	return false
}

// CreateEventRequest is the body of POST /events.
type CreateEventRequest struct {
	Name       string   `json:"name" yaml:"name"`
	EventDates []string `json:"eventDates" yaml:"eventDates"`
	Details    string   `json:"details" yaml:"details"`
}
