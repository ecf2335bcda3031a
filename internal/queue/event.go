// Package queue defines the reservation lifecycle messages exchanged over
// RabbitMQ, the publisher that emits them and the consumer that turns
// them into an audit log.
package queue

import (
	"time"

	"github.com/iliyamo/event-ticketing/internal/model"
)

// ReservationQueueName is the durable queue carrying ReservationEvent
// messages.
const ReservationQueueName = "ticket.reservations"

// Reservation lifecycle actions.
const (
	ActionCreated   = "reservation.created"
	ActionCancelled = "reservation.cancelled"
	ActionModified  = "reservation.modified"
)

// ReservationEvent is published after a reservation is created, cancelled
// or moved to a new seat.  OldSeatNumber is only set for modifications;
// SeatNumber is zero for cancellations.
type ReservationEvent struct {
	Action        string `json:"action"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email"`
	EventID       int    `json:"event_id"`
	EventDate     string `json:"event_date"`
	SeatNumber    int    `json:"seat_number,omitempty"`
	OldSeatNumber int    `json:"old_seat_number,omitempty"`
	OccurredAt    string `json:"occurred_at"`
}

// NewReserved builds the event for a successful reservation.
func NewReserved(req model.ReserveRequest, res model.ReserveResult) ReservationEvent {
	return ReservationEvent{
		Action:     ActionCreated,
		Name:       req.Name,
		Email:      req.Email,
		EventID:    res.EventID,
		EventDate:  res.EventDate,
		SeatNumber: res.SeatNumber,
		OccurredAt: now(),
	}
}

// NewCancelled builds the event for a cancelled reservation.
func NewCancelled(req model.ReservationRequest) ReservationEvent {
	return ReservationEvent{
		Action:     ActionCancelled,
		Email:      req.Email,
		EventID:    req.EventID,
		EventDate:  req.EventDate,
		OccurredAt: now(),
	}
}

// NewModified builds the event for a reservation moved to a new seat.
func NewModified(req model.ReservationRequest, res model.ModifyResult) ReservationEvent {
	return ReservationEvent{
		Action:        ActionModified,
		Email:         req.Email,
		EventID:       res.EventID,
		EventDate:     res.EventDate,
		SeatNumber:    res.NewSeatNumber,
		OldSeatNumber: res.OldSeatNumber,
		OccurredAt:    now(),
	}
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }
