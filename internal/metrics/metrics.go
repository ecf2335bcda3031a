// Package metrics exposes Prometheus instruments for the ticket API.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ticketOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_operations_total",
			Help: "Ticket operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	seatsOccupied = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ticket_seats_occupied",
			Help: "Occupied seats per event date",
		},
		[]string{"event_id", "event_date"},
	)

	seatCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ticket_seat_capacity",
			Help: "Seats available per event date",
		},
	)

	eventsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticket_events_created_total",
			Help: "Events added to the catalog",
		},
	)
)

// Operation names used as the "operation" label.
const (
	OpReserve   = "reserve"
	OpTicket    = "ticket"
	OpAttendees = "attendees"
	OpCancel    = "cancel"
	OpModify    = "modify"
)

// TrackOperation counts one ticket operation.  outcome is "success" or the
// error kind of a failed operation.
func TrackOperation(operation, outcome string) {
	ticketOperations.WithLabelValues(operation, outcome).Inc()
}

// SetSeatsOccupied records the occupied seat count of an event date.
func SetSeatsOccupied(eventID int, eventDate string, n int) {
	seatsOccupied.WithLabelValues(strconv.Itoa(eventID), eventDate).Set(float64(n))
}

// SetSeatCapacity records the configured seats per event date.
func SetSeatCapacity(n int) {
	seatCapacity.Set(float64(n))
}

// TrackEventCreated counts a new event.
func TrackEventCreated() {
	eventsCreated.Inc()
}
