package protocol

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aktesher/flight-booking-server/internal/model"
)

// The formatted lines are load-bearing: legacy clients match on the
// exact text, so these tests pin the wire format.

func TestLoginSuccess(t *testing.T) {
	assert.Equal(t, "SUCCESS=7", LoginSuccess(7))
}

func TestBookSuccess(t *testing.T) {
	assert.Equal(t, "SUCCESS: Seat 12A booked for flight 1", BookSuccess("12A", 1))
}

func TestSeatList(t *testing.T) {
	assert.Equal(t, "Seats: 11A, 11B, 12A", SeatList([]string{"11A", "11B", "12A"}))
	assert.Equal(t, "Seats: 1C", SeatList([]string{"1C"}))
}

func TestFlightList(t *testing.T) {
	flights := []model.Flight{
		{ID: 1, From: "Kyiv", To: "Warsaw", Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
		{ID: 2, From: "Warsaw", To: "Berlin", Date: time.Date(2026, 11, 21, 0, 0, 0, 0, time.UTC)},
	}
	want := "Flight ID: 1, From: Kyiv, To: Warsaw, Date: 05.03.2026\n" +
		"Flight ID: 2, From: Warsaw, To: Berlin, Date: 21.11.2026"
	assert.Equal(t, want, FlightList(flights))
}

func TestUserInfo(t *testing.T) {
	t.Run("full profile", func(t *testing.T) {
		p := model.Profile{UserID: 3, FirstName: "Alice", LastName: "Smith", Age: 30}
		assert.Equal(t, "USER=Alice,Smith,30", UserInfo(p))
	})

	t.Run("absent fields render as placeholders", func(t *testing.T) {
		p := model.Profile{UserID: 3, Age: -1}
		assert.Equal(t, "USER=?,?,-1", UserInfo(p))
	})
}
