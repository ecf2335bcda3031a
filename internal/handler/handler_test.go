package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/queue"
	"github.com/iliyamo/event-ticketing/internal/repository"
	"github.com/iliyamo/event-ticketing/internal/service"
)

type fakeNotifier struct {
	mu     sync.Mutex
	events []queue.ReservationEvent
	got    chan struct{}
}

func newFakeNotifier() *fakeNotifier { return &fakeNotifier{got: make(chan struct{}, 16)} }

func (f *fakeNotifier) Publish(_ context.Context, ev queue.ReservationEvent) error {
	f.mu.Lock()
	f.events = append(f.events, ev)
	f.mu.Unlock()
	f.got <- struct{}{}
	return nil
}

func (f *fakeNotifier) wait(t *testing.T, n int) []queue.ReservationEvent {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-f.got:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d", i+1)
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]queue.ReservationEvent(nil), f.events...)
}

func setup(t *testing.T, notifier Notifier) *echo.Echo {
	t.Helper()
	svc := service.NewTicketService(repository.NewEventRepo(), repository.NewSeatMap(repository.MaxSeats), repository.NewReservationRepo())
	_, err := svc.CreateEvent(model.CreateEventRequest{Name: "Concert", EventDates: []string{"2025-01-20", "2025-01-21"}, Details: "Live music"})
	require.NoError(t, err)

	e := echo.New()
	eh := NewEventHandler(svc)
	th := NewTicketHandler(svc, notifier)
	e.POST("/events", eh.CreateEvent)
	e.GET("/events", eh.ListEvents)
	e.GET("/events/:id", eh.GetEvent)
	e.POST("/reserve", th.Reserve)
	e.GET("/ticket", th.GetTicket)
	e.GET("/attendees", th.Attendees)
	e.DELETE("/cancel", th.Cancel)
	e.PUT("/modify", th.Modify)
	e.GET("/healthz", Health)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

const johnBody = `{"name":"John","email":"john@x.com","eventId":1,"eventDate":"2025-01-20"}`
const johnRef = `{"email":"john@x.com","eventId":1,"eventDate":"2025-01-20"}`

func TestHealth(t *testing.T) {
	e := setup(t, nil)
	rec := do(e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestEvents(t *testing.T) {
	e := setup(t, nil)

	rec := do(e, http.MethodPost, "/events", `{"name":"Play","eventDates":["2025-02-01"],"details":"Theatre"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Event created successfully!", body["message"])
	assert.Equal(t, float64(2), body["event"].(map[string]any)["id"])

	rec = do(e, http.MethodPost, "/events", `{"name":"Play"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name, event dates, and details are required.", decode(t, rec)["error"])

	rec = do(e, http.MethodGet, "/events", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []model.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	rec = do(e, http.MethodGet, "/events/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var ev model.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ev))
	assert.Equal(t, []string{"2025-01-20", "2025-01-21"}, ev.EventDates)

	for _, id := range []string{"9", "abc"} {
		rec = do(e, http.MethodGet, "/events/"+id, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Event not found.", decode(t, rec)["error"])
	}
}

func TestReserve(t *testing.T) {
	notifier := newFakeNotifier()
	e := setup(t, notifier)

	rec := do(e, http.MethodPost, "/reserve", johnBody)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Reservation successful!", body["message"])
	assert.Equal(t, float64(1), body["eventId"])
	assert.Equal(t, "2025-01-20", body["eventDate"])
	assert.Equal(t, float64(1), body["seatNumber"])

	events := notifier.wait(t, 1)
	assert.Equal(t, queue.ActionCreated, events[0].Action)
	assert.Equal(t, 1, events[0].SeatNumber)

	tests := []struct {
		name   string
		body   string
		status int
		msg    string
	}{
		{"duplicate", johnBody, http.StatusBadRequest, "You already have a reservation for this event on this date."},
		{"missing fields", `{"name":"John"}`, http.StatusBadRequest, "Name, email, event ID, and event date are required."},
		{"malformed body", `{"name":`, http.StatusBadRequest, "Name, email, event ID, and event date are required."},
		{"unknown event", `{"name":"A","email":"a@x.com","eventId":7,"eventDate":"2025-01-20"}`, http.StatusNotFound, "Event not found."},
		{"bad date", `{"name":"A","email":"a@x.com","eventId":1,"eventDate":"2030-01-01"}`, http.StatusBadRequest, "Invalid event date."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/reserve", tc.body)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.msg, decode(t, rec)["error"])
		})
	}
}

func TestTicketAndAttendees(t *testing.T) {
	e := setup(t, nil)

	rec := do(e, http.MethodGet, "/ticket", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email is required.", decode(t, rec)["error"])

	rec = do(e, http.MethodGet, "/ticket?email=john@x.com", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No reservations found for this email.", decode(t, rec)["error"])

	rec = do(e, http.MethodGet, "/attendees?eventId=x&eventDate=2025-01-20", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Valid event ID and event date are required.", decode(t, rec)["error"])

	rec = do(e, http.MethodGet, "/attendees?eventId=1&eventDate=2025-01-20", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No attendees found for this event on this date.", decode(t, rec)["error"])

	require.Equal(t, http.StatusOK, do(e, http.MethodPost, "/reserve", johnBody).Code)

	rec = do(e, http.MethodGet, "/ticket?email=john@x.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var tickets []model.Reservation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tickets))
	require.Len(t, tickets, 1)
	assert.Equal(t, model.Reservation{Name: "John", Email: "john@x.com", SeatNumber: 1, EventID: 1, EventDate: "2025-01-20"}, tickets[0])

	rec = do(e, http.MethodGet, "/attendees?eventId=1&eventDate=2025-01-20", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var attendees []model.Reservation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &attendees))
	assert.Len(t, attendees, 1)
}

func TestCancelAndModify(t *testing.T) {
	notifier := newFakeNotifier()
	e := setup(t, notifier)

	rec := do(e, http.MethodDelete, "/cancel", johnRef)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No reservations found for this event on this date.", decode(t, rec)["error"])

	rec = do(e, http.MethodPut, "/modify", `{"email":"john@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email, event ID, and event date are required.", decode(t, rec)["error"])

	require.Equal(t, http.StatusOK, do(e, http.MethodPost, "/reserve", johnBody).Code)

	rec = do(e, http.MethodPut, "/modify", johnRef)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Seat reservation modified successfully.", body["message"])
	assert.Equal(t, float64(2), body["newSeatNumber"])
	assert.Equal(t, float64(1), body["eventId"])
	assert.Equal(t, "2025-01-20", body["eventDate"])

	rec = do(e, http.MethodDelete, "/cancel", `{"email":"ghost@x.com","eventId":1,"eventDate":"2025-01-20"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No reservation found for this email on the given event and date.", decode(t, rec)["error"])

	rec = do(e, http.MethodDelete, "/cancel", johnRef)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Reservation cancelled successfully.", decode(t, rec)["message"])

	events := notifier.wait(t, 3)
	actions := map[string]queue.ReservationEvent{}
	for _, ev := range events {
		actions[ev.Action] = ev
	}
	assert.Contains(t, actions, queue.ActionCreated)
	assert.Contains(t, actions, queue.ActionCancelled)
	require.Contains(t, actions, queue.ActionModified)
	assert.Equal(t, 1, actions[queue.ActionModified].OldSeatNumber)
	assert.Equal(t, 2, actions[queue.ActionModified].SeatNumber)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(service.KindValidation))
	assert.Equal(t, http.StatusNotFound, statusFor(service.KindNotFound))
	assert.Equal(t, http.StatusBadRequest, statusFor(service.KindConflict))
	assert.Equal(t, http.StatusBadRequest, statusFor(service.KindCapacity))
	assert.Equal(t, http.StatusInternalServerError, statusFor(service.Kind(0)))
}

// slowNotifier records an event only after a delay, so a caller that does
// not wait for in-flight publishes sees nothing.
type slowNotifier struct {
	delay     time.Duration
	mu        sync.Mutex
	published []queue.ReservationEvent
}

func (s *slowNotifier) Publish(_ context.Context, ev queue.ReservationEvent) error {
	time.Sleep(s.delay)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, ev)
	return nil
}

func TestTicketHandler_WaitDrainsPendingPublishes(t *testing.T) {
	svc := service.NewTicketService(repository.NewEventRepo(), repository.NewSeatMap(repository.MaxSeats), repository.NewReservationRepo())
	_, err := svc.CreateEvent(model.CreateEventRequest{Name: "Concert", EventDates: []string{"2025-01-20"}, Details: "Live music"})
	require.NoError(t, err)

	notifier := &slowNotifier{delay: 100 * time.Millisecond}
	th := NewTicketHandler(svc, notifier)
	e := echo.New()
	e.POST("/reserve", th.Reserve)
	e.DELETE("/cancel", th.Cancel)

	require.Equal(t, http.StatusOK, do(e, http.MethodPost, "/reserve", johnBody).Code)
	require.Equal(t, http.StatusOK, do(e, http.MethodDelete, "/cancel", johnRef).Code)

	th.Wait()

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	require.Len(t, notifier.published, 2)
	actions := []string{notifier.published[0].Action, notifier.published[1].Action}
	assert.ElementsMatch(t, []string{queue.ActionCreated, queue.ActionCancelled}, actions)
}
