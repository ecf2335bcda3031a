package repository

import "fmt"

// BucketKey identifies the reservations and occupied seats of one event
// on one of its dates.
type BucketKey struct {
	EventID   int
	EventDate string
}

// Key builds a BucketKey.
func Key(eventID int, eventDate string) BucketKey {
	return BucketKey{EventID: eventID, EventDate: eventDate}
}

func (k BucketKey) String() string {
	return fmt.Sprintf("%d/%s", k.EventID, k.EventDate)
}
