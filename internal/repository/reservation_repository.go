package repository

import "github.com/iliyamo/event-ticketing/internal/model"

// ReservationRepo holds reservations grouped by event/date.  Within a
// bucket reservations keep insertion order; buckets themselves are
// remembered in the order they were first created so that cross-bucket
// listings are stable.  An emptied bucket is kept.  ReservationRepo is
// not safe for concurrent use; the ticket service serialises access.
type ReservationRepo struct {
	buckets map[BucketKey][]*model.Reservation
	order   []BucketKey
}

// NewReservationRepo returns an empty ReservationRepo.
func NewReservationRepo() *ReservationRepo {
	return &ReservationRepo{buckets: make(map[BucketKey][]*model.Reservation)}
}

// Add appends a reservation to the bucket of its event/date.
func (r *ReservationRepo) Add(res model.Reservation) {
	key := Key(res.EventID, res.EventDate)
	if _, ok := r.buckets[key]; !ok {
		r.order = append(r.order, key)
	}
	r.buckets[key] = append(r.buckets[key], &res)
}

// HasBucket reports whether any reservation was ever added for key.
func (r *ReservationRepo) HasBucket(key BucketKey) bool {
	_, ok := r.buckets[key]
	return ok
}

// FindByEmail returns the stored reservation for email in the bucket.
// The returned pointer aliases the stored record.
func (r *ReservationRepo) FindByEmail(key BucketKey, email string) (*model.Reservation, error) {
	bucket, ok := r.buckets[key]
	if !ok {
		return nil, ErrBucketNotFound
	}
	for _, res := range bucket {
		if res.Email == email {
			return res, nil
		}
	}
	return nil, ErrReservationNotFound
}

// Remove deletes the reservation for email from the bucket and returns it.
func (r *ReservationRepo) Remove(key BucketKey, email string) (model.Reservation, error) {
	bucket, ok := r.buckets[key]
	if !ok {
		return model.Reservation{}, ErrBucketNotFound
	}
	for i, res := range bucket {
		if res.Email == email {
			r.buckets[key] = append(bucket[:i:i], bucket[i+1:]...)
			return *res, nil
		}
	}
	return model.Reservation{}, ErrReservationNotFound
}

// ListForDate returns a copy of the reservations in a bucket.
func (r *ReservationRepo) ListForDate(key BucketKey) []model.Reservation {
	bucket := r.buckets[key]
	out := make([]model.Reservation, 0, len(bucket))
	for _, res := range bucket {
		out = append(out, *res)
	}
	return out
}

// ListByEmail returns copies of every reservation made with email across
// all events and dates.
func (r *ReservationRepo) ListByEmail(email string) []model.Reservation {
	var out []model.Reservation
	for _, key := range r.order {
		for _, res := range r.buckets[key] {
			if res.Email == email {
				out = append(out, *res)
			}
		}
	}
	return out
}
