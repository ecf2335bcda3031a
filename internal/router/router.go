package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"                             // Echo web framework
	"github.com/prometheus/client_golang/prometheus/promhttp" // Prometheus exposition handler

	"github.com/iliyamo/event-ticketing/internal/handler" // HTTP handlers for events and tickets
)

// Middlewares carries the optional Redis-backed middlewares.  A nil field
// leaves the corresponding routes unwrapped.
type Middlewares struct {
	Cache     echo.MiddlewareFunc // response cache for immutable reads
	RateLimit echo.MiddlewareFunc // token bucket for reservation mutations
}

// RegisterRoutes registers the health check and metrics endpoints.  These
// routes are never cached or rate limited.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterEvents registers the event catalog.  Only single-event lookups go
// through the cache: events never change after creation, while the list
// grows with every POST /events.
func RegisterEvents(e *echo.Echo, h *handler.EventHandler, mw Middlewares) {
	e.POST("/events", h.CreateEvent)
	e.GET("/events", h.ListEvents)
	e.GET("/events/:id", h.GetEvent, optional(mw.Cache)...)
}

// RegisterTickets registers the reservation endpoints.  Mutations share the
// rate limiter; reads are served live because they change on every
// reservation.
func RegisterTickets(e *echo.Echo, h *handler.TicketHandler, mw Middlewares) {
	limited := optional(mw.RateLimit)
	e.POST("/reserve", h.Reserve, limited...)
	e.DELETE("/cancel", h.Cancel, limited...)
	e.PUT("/modify", h.Modify, limited...)

	e.GET("/ticket", h.GetTicket)
	e.GET("/attendees", h.Attendees)
}

func optional(m echo.MiddlewareFunc) []echo.MiddlewareFunc {
	if m == nil {
		return nil
	}
	return []echo.MiddlewareFunc{m}
}
