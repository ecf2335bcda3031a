package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/metrics"
	"github.com/iliyamo/event-ticketing/internal/service"
)

// statusFor maps a ticket error kind to its HTTP status.  Conflicts and
// capacity failures are client errors like validation failures.
func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindValidation, service.KindConflict, service.KindCapacity:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// writeError renders err as {"error": message}.  Errors that did not come
// from the ticket service are reported as internal errors.
func writeError(c echo.Context, err error) error {
	var se *service.Error
	if errors.As(err, &se) {
		return c.JSON(statusFor(se.Kind), echo.Map{"error": se.Message})
	}
	c.Logger().Errorf("unexpected error: %v", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

// track counts an operation under its outcome label.
func track(op string, err error) {
	if err == nil {
		metrics.TrackOperation(op, "success")
		return
	}
	metrics.TrackOperation(op, service.KindOf(err).String())
}
