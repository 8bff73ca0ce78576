package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aktesher/flight-booking-server/internal/model"
)

func newTestInventory(t *testing.T) *MemoryInventory {
	t.Helper()
	inv := NewMemoryInventory()
	inv.AddFlight(model.Flight{ID: 1, From: "Kyiv", To: "Warsaw", Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
		"11A", "11B", "12A")
	inv.AddFlight(model.Flight{ID: 2, From: "Warsaw", To: "Berlin", Date: time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)},
		"1A")
	return inv
}

func TestMemoryInventory_ListFlights(t *testing.T) {
	inv := newTestInventory(t)
	flights, err := inv.ListFlights(context.Background())
	require.NoError(t, err)
	require.Len(t, flights, 2)
	assert.Equal(t, 1, flights[0].ID)
	assert.Equal(t, 2, flights[1].ID)
}

func TestMemoryInventory_ListFreeSeats(t *testing.T) {
	inv := newTestInventory(t)
	ctx := context.Background()

	seats, err := inv.ListFreeSeats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"11A", "11B", "12A"}, seats)

	t.Run("booked seat disappears from listing", func(t *testing.T) {
		booked, err := inv.ConditionalBookSeat(ctx, 1, "12A")
		require.NoError(t, err)
		require.True(t, booked)

		seats, err := inv.ListFreeSeats(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"11A", "11B"}, seats)
	})

	t.Run("unknown flight lists nothing", func(t *testing.T) {
		seats, err := inv.ListFreeSeats(ctx, 99)
		require.NoError(t, err)
		assert.Empty(t, seats)
	})
}

func TestMemoryInventory_ConditionalBookSeat(t *testing.T) {
	ctx := context.Background()

	t.Run("second attempt on same seat fails", func(t *testing.T) {
		inv := newTestInventory(t)
		booked, err := inv.ConditionalBookSeat(ctx, 1, "11A")
		require.NoError(t, err)
		assert.True(t, booked)

		booked, err = inv.ConditionalBookSeat(ctx, 1, "11A")
		require.NoError(t, err)
		assert.False(t, booked)
	})

	t.Run("unknown flight or seat does not transition", func(t *testing.T) {
		inv := newTestInventory(t)
		booked, err := inv.ConditionalBookSeat(ctx, 99, "11A")
		require.NoError(t, err)
		assert.False(t, booked)

		booked, err = inv.ConditionalBookSeat(ctx, 1, "99Z")
		require.NoError(t, err)
		assert.False(t, booked)
	})
}

func TestMemoryInventory_ConcurrentBooking(t *testing.T) {
	const attempts = 64

	inv := newTestInventory(t)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		winners atomic.Int64
		start   = make(chan struct{})
		errs    = make(chan error, attempts)
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			booked, err := inv.ConditionalBookSeat(ctx, 1, "12A")
			if err != nil {
				errs <- err
				return
			}
			if booked {
				winners.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("booking attempt failed: %v", err)
	}
	assert.Equal(t, int64(1), winners.Load(), "exactly one attempt must win the seat")

	seats, err := inv.ListFreeSeats(ctx, 1)
	require.NoError(t, err)
	assert.NotContains(t, seats, "12A")
}

func TestMemoryInventory_Exists(t *testing.T) {
	inv := newTestInventory(t)
	ctx := context.Background()

	ok, err := inv.FlightExists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = inv.FlightExists(ctx, 99)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = inv.SeatExists(ctx, 1, "11B")
	require.NoError(t, err)
	assert.True(t, ok)

	// Booking must not affect existence.
	_, err = inv.ConditionalBookSeat(ctx, 1, "11B")
	require.NoError(t, err)
	ok, err = inv.SeatExists(ctx, 1, "11B")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = inv.SeatExists(ctx, 1, "99Z")
	require.NoError(t, err)
	assert.False(t, ok)
}
