// Package repository defines the in-memory stores behind the ticket
// service and the sentinel errors they return.  Higher layers use these
// values to distinguish failure scenarios; for example ErrNoSeatsAvailable
// signals that every seat of an event/date is taken, while
// ErrBucketNotFound means no reservation was ever made for that
// event/date.
package repository

import "errors"

// ErrEventNotFound is returned when no event has the requested ID.
var ErrEventNotFound = errors.New("event not found")

// ErrBucketNotFound is returned when an event/date has never had a
// reservation.
var ErrBucketNotFound = errors.New("reservation bucket not found")

// ErrReservationNotFound is returned when no reservation exists for an
// email within an event/date.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrNoSeatsAvailable is returned by SeatMap.Allocate when every seat
// of an event/date is occupied.
var ErrNoSeatsAvailable = errors.New("no seats available")
