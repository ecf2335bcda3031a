package repository

// MaxSeats is the default number of seats per event/date.
const MaxSeats = 100

// SeatMap tracks occupied seat numbers per event/date.  Seats are
// numbered 1..capacity and Allocate always hands out the lowest free
// number.  SeatMap is not safe for concurrent use; the ticket service
// serialises access to it.
type SeatMap struct {
	capacity int
	occupied map[BucketKey][]bool
}

// NewSeatMap returns a SeatMap with the given per-event/date capacity.
// A non-positive capacity falls back to MaxSeats.
func NewSeatMap(capacity int) *SeatMap {
	if capacity <= 0 {
		capacity = MaxSeats
	}
	return &SeatMap{capacity: capacity, occupied: make(map[BucketKey][]bool)}
}

// Capacity returns the number of seats per event/date.
func (m *SeatMap) Capacity() int { return m.capacity }

func (m *SeatMap) seats(key BucketKey) []bool {
	s, ok := m.occupied[key]
	if !ok {
		// index 0 is unused so seat numbers index directly
		s = make([]bool, m.capacity+1)
		m.occupied[key] = s
	}
	return s
}

// Allocate marks the lowest free seat as occupied and returns its number.
// It returns ErrNoSeatsAvailable when every seat is taken.
func (m *SeatMap) Allocate(key BucketKey) (int, error) {
	s := m.seats(key)
	for seat := 1; seat <= m.capacity; seat++ {
		if !s[seat] {
			s[seat] = true
			return seat, nil
		}
	}
	return 0, ErrNoSeatsAvailable
}

// Release frees a seat.  Releasing a free or out-of-range seat is a no-op.
func (m *SeatMap) Release(key BucketKey, seat int) {
	s, ok := m.occupied[key]
	if !ok || seat < 1 || seat > m.capacity {
		return
	}
	s[seat] = false
}

// IsOccupied reports whether a seat is currently taken.
func (m *SeatMap) IsOccupied(key BucketKey, seat int) bool {
	s, ok := m.occupied[key]
	if !ok || seat < 1 || seat > m.capacity {
		return false
	}
	return s[seat]
}

// Occupied returns the number of taken seats for an event/date.
func (m *SeatMap) Occupied(key BucketKey) int {
	n := 0
	for _, taken := range m.occupied[key] {
		if taken {
			n++
		}
	}
	return n
}
