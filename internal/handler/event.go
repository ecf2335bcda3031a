package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/metrics"
	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/service"
)

// EventHandler serves the event catalog.
type EventHandler struct {
	Service *service.TicketService
}

// NewEventHandler constructs an EventHandler and panics if svc is nil.
func NewEventHandler(svc *service.TicketService) *EventHandler {
	if svc == nil {
		panic("nil service passed to NewEventHandler")
	}
	return &EventHandler{Service: svc}
}

// CreateEvent handles POST /events.  The body carries name, eventDates and
// details; the ID is assigned by the catalog.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req model.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name, event dates, and details are required."})
	}
	ev, err := h.Service.CreateEvent(req)
	if err != nil {
		return writeError(c, err)
	}
	metrics.TrackEventCreated()
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Event created successfully!",
		"event":   ev,
	})
}

// ListEvents handles GET /events.
func (h *EventHandler) ListEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Service.ListEvents())
}

// GetEvent handles GET /events/:id.  A non-numeric id is reported as a
// missing event.
func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Event not found."})
	}
	ev, err := h.Service.GetEvent(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ev)
}
