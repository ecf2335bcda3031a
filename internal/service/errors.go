package service

import "errors"

// Kind classifies a failed ticket operation.  Every kind is an expected
// outcome the caller can recover from.
type Kind int

const (
	// KindValidation marks malformed or missing input.
	KindValidation Kind = iota + 1
	// KindNotFound marks an absent event, reservation or bucket.
	KindNotFound
	// KindConflict marks a duplicate reservation.
	KindConflict
	// KindCapacity marks an event/date with no seats left.
	KindCapacity
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindCapacity:
		return "capacity"
	}
	return "unknown"
}

// Error is the failure result of a ticket operation.  Message is the
// fixed, client-facing text for the failed check.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

func validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

func notFound(msg string, err error) *Error {
	return &Error{Kind: KindNotFound, Message: msg, Err: err}
}

const (
	msgReserveRequired     = "Name, email, event ID, and event date are required."
	msgEmailRequired       = "Email is required."
	msgAttendeesRequired   = "Valid event ID and event date are required."
	msgReservationRequired = "Email, event ID, and event date are required."
	msgEventRequired       = "Name, event dates, and details are required."

	msgEventNotFound       = "Event not found."
	msgInvalidDate         = "Invalid event date."
	msgDuplicate           = "You already have a reservation for this event on this date."
	msgNoSeats             = "No seats available for this event on this date."
	msgNoTickets           = "No reservations found for this email."
	msgNoAttendees         = "No attendees found for this event on this date."
	msgNoBucket            = "No reservations found for this event on this date."
	msgReservationNotFound = "No reservation found for this email on the given event and date."
)
