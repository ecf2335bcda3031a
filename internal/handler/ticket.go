package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/metrics"
	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/queue"
	"github.com/iliyamo/event-ticketing/internal/service"
)

// Notifier receives reservation lifecycle events after a successful
// mutation.  *queue.Publisher satisfies it.
type Notifier interface {
	Publish(ctx context.Context, ev queue.ReservationEvent) error
}

const publishTimeout = 5 * time.Second

// TicketHandler exposes reservation operations over HTTP.  Request parsing
// lives here; every rule is enforced by the ticket service.
type TicketHandler struct {
	Service  *service.TicketService
	Notifier Notifier // optional; nil disables event publishing

	pending sync.WaitGroup
}

// NewTicketHandler constructs a TicketHandler.  notifier may be nil.
func NewTicketHandler(svc *service.TicketService, notifier Notifier) *TicketHandler {
	if svc == nil {
		panic("nil service passed to NewTicketHandler")
	}
	return &TicketHandler{Service: svc, Notifier: notifier}
}

// Reserve handles POST /reserve.
func (h *TicketHandler) Reserve(c echo.Context) error {
	var req model.ReserveRequest
	if err := c.Bind(&req); err != nil {
		metrics.TrackOperation(metrics.OpReserve, service.KindValidation.String())
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name, email, event ID, and event date are required."})
	}
	res, err := h.Service.ReserveTicket(req)
	track(metrics.OpReserve, err)
	if err != nil {
		return writeError(c, err)
	}
	h.seatsChanged(res.EventID, res.EventDate)
	h.notify(c, queue.NewReserved(req, res))
	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Reservation successful!",
		"eventId":    res.EventID,
		"eventDate":  res.EventDate,
		"seatNumber": res.SeatNumber,
	})
}

// GetTicket handles GET /ticket?email=.
func (h *TicketHandler) GetTicket(c echo.Context) error {
	tickets, err := h.Service.GetTicketDetails(c.QueryParam("email"))
	track(metrics.OpTicket, err)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, tickets)
}

// Attendees handles GET /attendees?eventId=&eventDate=.
func (h *TicketHandler) Attendees(c echo.Context) error {
	attendees, err := h.Service.GetAllAttendees(c.QueryParam("eventId"), c.QueryParam("eventDate"))
	track(metrics.OpAttendees, err)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, attendees)
}

// Cancel handles DELETE /cancel.
func (h *TicketHandler) Cancel(c echo.Context) error {
	var req model.ReservationRequest
	if err := c.Bind(&req); err != nil {
		metrics.TrackOperation(metrics.OpCancel, service.KindValidation.String())
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email, event ID, and event date are required."})
	}
	err := h.Service.CancelReservation(req)
	track(metrics.OpCancel, err)
	if err != nil {
		return writeError(c, err)
	}
	h.seatsChanged(req.EventID, req.EventDate)
	h.notify(c, queue.NewCancelled(req))
	return c.JSON(http.StatusOK, echo.Map{"message": "Reservation cancelled successfully."})
}

// Modify handles PUT /modify.
func (h *TicketHandler) Modify(c echo.Context) error {
	var req model.ReservationRequest
	if err := c.Bind(&req); err != nil {
		metrics.TrackOperation(metrics.OpModify, service.KindValidation.String())
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email, event ID, and event date are required."})
	}
	res, err := h.Service.ModifyReservation(req)
	track(metrics.OpModify, err)
	if err != nil {
		return writeError(c, err)
	}
	h.notify(c, queue.NewModified(req, res))
	return c.JSON(http.StatusOK, echo.Map{
		"message":       "Seat reservation modified successfully.",
		"eventId":       res.EventID,
		"eventDate":     res.EventDate,
		"newSeatNumber": res.NewSeatNumber,
	})
}

func (h *TicketHandler) seatsChanged(eventID int, eventDate string) {
	metrics.SetSeatsOccupied(eventID, eventDate, h.Service.OccupiedSeats(eventID, eventDate))
}

// notify publishes ev in the background.  Failures are logged and never
// affect the response.
func (h *TicketHandler) notify(c echo.Context, ev queue.ReservationEvent) {
	if h.Notifier == nil {
		return
	}
	logger := c.Logger()
	h.pending.Add(1)
	go func() {
		defer h.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := h.Notifier.Publish(ctx, ev); err != nil {
			logger.Warnf("publish %s for %s failed: %v", ev.Action, ev.Email, err)
		}
	}()
}

// Wait blocks until every event handed to the notifier has been published
// or has failed.  Call it after the server stops accepting requests.
func (h *TicketHandler) Wait() {
	h.pending.Wait()
}
