package model

// Reservation binds one attendee (by email) to one seat for one
// event/date pair.  SeatNumber changes when the reservation is modified;
// the record is dropped when it is cancelled.
//
// Fields:
//  Name       – attendee name.
//  Email      – attendee email, unique per event/date.
//  SeatNumber – seat in 1..capacity, unique per event/date.
//  EventID    – event being attended.
//  EventDate  – one of the event's dates.
type Reservation struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	SeatNumber int    `json:"seatNumber"`
	EventID    int    `json:"eventId"`
	EventDate  string `json:"eventDate"`
}

// ReserveRequest is the body of POST /reserve.
type ReserveRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	EventID   int    `json:"eventId"`
	EventDate string `json:"eventDate"`
}

// ReservationRequest identifies an existing reservation.  It is the body
// of DELETE /cancel and PUT /modify.
type ReservationRequest struct {
	Email     string `json:"email"`
	EventID   int    `json:"eventId"`
	EventDate string `json:"eventDate"`
}

// ReserveResult describes a newly reserved seat.
type ReserveResult struct {
	EventID    int    `json:"eventId"`
	EventDate  string `json:"eventDate"`
	SeatNumber int    `json:"seatNumber"`
}

// ModifyResult describes the seat a reservation was moved to.
type ModifyResult struct {
	EventID       int    `json:"eventId"`
	EventDate     string `json:"eventDate"`
	NewSeatNumber int    `json:"newSeatNumber"`
	OldSeatNumber int    `json:"-"`
}
