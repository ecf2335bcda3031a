// Package service implements the reservation rules on top of the
// in-memory stores: seat uniqueness, per-date capacity and one
// reservation per email per event date.
package service

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/repository"
)

// TicketService orchestrates the event catalog, the seat map and the
// reservation store.  All operations are serialised by a single mutex so
// that the check-then-act sequences below never interleave; the seat map
// and the reservation buckets are always updated together.
type TicketService struct {
	mu           sync.Mutex
	events       *repository.EventRepo
	seats        *repository.SeatMap
	reservations *repository.ReservationRepo
}

// NewTicketService wires the service to its stores.  It panics when a
// dependency is nil.
func NewTicketService(events *repository.EventRepo, seats *repository.SeatMap, reservations *repository.ReservationRepo) *TicketService {
	if events == nil || seats == nil || reservations == nil {
		panic("nil repository passed to NewTicketService")
	}
	return &TicketService{events: events, seats: seats, reservations: reservations}
}

// CreateEvent adds an event to the catalog.
func (s *TicketService) CreateEvent(req model.CreateEventRequest) (model.Event, error) {
	if blank(req.Name) || len(req.EventDates) == 0 || blank(req.Details) {
		return model.Event{}, validation(msgEventRequired)
	}
	return s.events.Create(req.Name, req.EventDates, req.Details), nil
}

// GetEvent returns a single event.
func (s *TicketService) GetEvent(id int) (model.Event, error) {
	ev, err := s.events.GetByID(id)
	if err != nil {
		return model.Event{}, notFound(msgEventNotFound, err)
	}
	return ev, nil
}

// ListEvents returns every event in creation order.
func (s *TicketService) ListEvents() []model.Event {
	return s.events.List()
}

// ReserveTicket assigns the lowest free seat of an event date to a new
// attendee.  Checks run in a fixed order: required fields, event
// existence, date validity, duplicate email, capacity.
func (s *TicketService) ReserveTicket(req model.ReserveRequest) (model.ReserveResult, error) {
	if blank(req.Name) || blank(req.Email) || req.EventID == 0 || blank(req.EventDate) {
		return model.ReserveResult{}, validation(msgReserveRequired)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ev, err := s.events.GetByID(req.EventID)
	if err != nil {
		return model.ReserveResult{}, notFound(msgEventNotFound, err)
	}
	if !ev.HasDate(req.EventDate) {
		return model.ReserveResult{}, validation(msgInvalidDate)
	}

	key := repository.Key(req.EventID, req.EventDate)
	if _, err := s.reservations.FindByEmail(key, req.Email); err == nil {
		return model.ReserveResult{}, &Error{Kind: KindConflict, Message: msgDuplicate}
	}

	seat, err := s.seats.Allocate(key)
	if err != nil {
		return model.ReserveResult{}, &Error{Kind: KindCapacity, Message: msgNoSeats, Err: err}
	}
	s.reservations.Add(model.Reservation{
		Name:       req.Name,
		Email:      req.Email,
		SeatNumber: seat,
		EventID:    req.EventID,
		EventDate:  req.EventDate,
	})
	return model.ReserveResult{EventID: req.EventID, EventDate: req.EventDate, SeatNumber: seat}, nil
}

// GetTicketDetails lists every reservation made with email.
func (s *TicketService) GetTicketDetails(email string) ([]model.Reservation, error) {
	if blank(email) {
		return nil, validation(msgEmailRequired)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.reservations.ListByEmail(email)
	if len(res) == 0 {
		return nil, notFound(msgNoTickets, repository.ErrReservationNotFound)
	}
	return res, nil
}

// GetAllAttendees lists the reservations of one event date.  eventID is
// the raw query value and must parse as an integer.
func (s *TicketService) GetAllAttendees(eventID, eventDate string) ([]model.Reservation, error) {
	id, err := strconv.Atoi(strings.TrimSpace(eventID))
	if err != nil || blank(eventDate) {
		return nil, validation(msgAttendeesRequired)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.reservations.ListForDate(repository.Key(id, eventDate))
	if len(res) == 0 {
		return nil, notFound(msgNoAttendees, repository.ErrBucketNotFound)
	}
	return res, nil
}

// CancelReservation removes a reservation and frees its seat.
func (s *TicketService) CancelReservation(req model.ReservationRequest) error {
	if err := checkReservationRequest(req); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := repository.Key(req.EventID, req.EventDate)
	removed, err := s.reservations.Remove(key, req.Email)
	if err != nil {
		return lookupError(err)
	}
	s.seats.Release(key, removed.SeatNumber)
	return nil
}

// ModifyReservation moves a reservation to a new seat.  The new seat is
// taken before the old one is freed, so a reservation never gets its own
// seat back and a fully booked date rejects the move without changes.
func (s *TicketService) ModifyReservation(req model.ReservationRequest) (model.ModifyResult, error) {
	if err := checkReservationRequest(req); err != nil {
		return model.ModifyResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := repository.Key(req.EventID, req.EventDate)
	res, err := s.reservations.FindByEmail(key, req.Email)
	if err != nil {
		return model.ModifyResult{}, lookupError(err)
	}

	seat, err := s.seats.Allocate(key)
	if err != nil {
		return model.ModifyResult{}, &Error{Kind: KindCapacity, Message: msgNoSeats, Err: err}
	}
	old := res.SeatNumber
	s.seats.Release(key, old)
	res.SeatNumber = seat

	return model.ModifyResult{EventID: req.EventID, EventDate: req.EventDate, NewSeatNumber: seat, OldSeatNumber: old}, nil
}

// OccupiedSeats returns how many seats are taken for an event date.
func (s *TicketService) OccupiedSeats(eventID int, eventDate string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seats.Occupied(repository.Key(eventID, eventDate))
}

func checkReservationRequest(req model.ReservationRequest) error {
	if blank(req.Email) || req.EventID == 0 || blank(req.EventDate) {
		return validation(msgReservationRequired)
	}
	return nil
}

// lookupError maps a reservation store miss onto its client message.
func lookupError(err error) error {
	if errors.Is(err, repository.ErrBucketNotFound) {
		return notFound(msgNoBucket, err)
	}
	return notFound(msgReservationNotFound, err)
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
