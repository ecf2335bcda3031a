package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTrackOperation(t *testing.T) {
	before := testutil.ToFloat64(ticketOperations.WithLabelValues(OpReserve, "success"))

	TrackOperation(OpReserve, "success")
	TrackOperation(OpReserve, "success")

	assert.Equal(t, before+2, testutil.ToFloat64(ticketOperations.WithLabelValues(OpReserve, "success")))
}

func TestSeatGauges(t *testing.T) {
	SetSeatsOccupied(7, "2025-01-20", 12)
	assert.Equal(t, float64(12), testutil.ToFloat64(seatsOccupied.WithLabelValues("7", "2025-01-20")))

	SetSeatCapacity(100)
	assert.Equal(t, float64(100), testutil.ToFloat64(seatCapacity))
}

func TestTrackEventCreated(t *testing.T) {
	before := testutil.ToFloat64(eventsCreated)
	TrackEventCreated()
	assert.Equal(t, before+1, testutil.ToFloat64(eventsCreated))
}
