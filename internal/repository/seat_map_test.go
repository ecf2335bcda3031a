package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatMap_AllocatesLowestFreeSeat(t *testing.T) {
	m := NewSeatMap(0)
	key := Key(1, "2025-01-20")

	for want := 1; want <= 5; want++ {
		seat, err := m.Allocate(key)
		require.NoError(t, err)
		assert.Equal(t, want, seat)
	}

	m.Release(key, 2)
	m.Release(key, 4)

	seat, err := m.Allocate(key)
	require.NoError(t, err)
	assert.Equal(t, 2, seat)

	seat, err = m.Allocate(key)
	require.NoError(t, err)
	assert.Equal(t, 4, seat)
}

func TestSeatMap_KeysAreIndependent(t *testing.T) {
	m := NewSeatMap(MaxSeats)

	a, _ := m.Allocate(Key(1, "2025-01-20"))
	b, _ := m.Allocate(Key(1, "2025-01-21"))
	c, _ := m.Allocate(Key(2, "2025-01-20"))

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, 1, c)
}

func TestSeatMap_Exhaustion(t *testing.T) {
	m := NewSeatMap(MaxSeats)
	key := Key(1, "2025-01-20")

	for i := 0; i < MaxSeats; i++ {
		_, err := m.Allocate(key)
		require.NoError(t, err)
	}
	assert.Equal(t, MaxSeats, m.Occupied(key))

	_, err := m.Allocate(key)
	assert.ErrorIs(t, err, ErrNoSeatsAvailable)

	m.Release(key, 57)
	seat, err := m.Allocate(key)
	require.NoError(t, err)
	assert.Equal(t, 57, seat)
}

func TestSeatMap_ReleaseIsNoOpWhenAbsent(t *testing.T) {
	m := NewSeatMap(3)
	key := Key(1, "2025-01-20")

	m.Release(key, 1)
	m.Release(key, 0)
	m.Release(key, 99)

	seat, err := m.Allocate(key)
	require.NoError(t, err)
	assert.Equal(t, 1, seat)

	m.Release(key, 1)
	m.Release(key, 1)
	assert.False(t, m.IsOccupied(key, 1))
	assert.Equal(t, 0, m.Occupied(key))
	assert.Equal(t, 3, m.Capacity())
}
