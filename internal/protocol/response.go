package protocol

import (
	"fmt"
	"strings"

	"github.com/aktesher/flight-booking-server/internal/model"
)

// Response strings reproduced bit-for-bit from the legacy protocol.
// Existing clients match on these exact values, so they must never be
// reworded.
const (
	RespInvalidRequest     = "ERROR: Invalid request"
	RespUnknownCommand     = "ERROR: Unknown command"
	RespMissingParams      = "ERROR: Missing parameters"
	RespInternalError      = "ERROR: Internal server error"
	RespInvalidCredentials = "ERROR: Invalid credentials"
	RespUserRegistered     = "SUCCESS: User registered"
	RespUsernameExists     = "ERROR: Username already exists"
	RespNoFlights          = "ERROR: No flights available"
	RespNoSeats            = "ERROR: No available seats"
	RespInvalidFlightID    = "ERROR: Invalid flight ID"
	RespInvalidUserID      = "ERROR: Invalid user ID"
	RespInvalidAge         = "ERROR: Invalid age"
	RespFlightNotFound     = "ERROR: Flight does not exist"
	RespSeatNotFound       = "ERROR: Seat does not exist"
	RespSeatTaken          = "ERROR: Seat is already booked"
	RespUserNotFound       = "ERROR: User not found"
	RespPasswordUpdated    = "SUCCESS: Password updated"
	RespUserInfoUpdated    = "SUCCESS: User info updated"
	RespUserInfoAdded      = "SUCCESS: User info added"
)

// LoginSuccess formats the LOGIN success line carrying the user id.
func LoginSuccess(userID int) string {
	return fmt.Sprintf("SUCCESS=%d", userID)
}

// BookSuccess formats the BOOK_SEAT success line.
func BookSuccess(seat string, flightID int) string {
	return fmt.Sprintf("SUCCESS: Seat %s booked for flight %d", seat, flightID)
}

// SeatList formats the GET_SEATS response for a non-empty label list.
func SeatList(labels []string) string {
	return "Seats: " + strings.Join(labels, ", ")
}

// FlightList formats the multi-line GET_FLIGHTS block, one flight per
// line with the date rendered as dd.MM.yyyy.
func FlightList(flights []model.Flight) string {
	lines := make([]string, 0, len(flights))
	for _, f := range flights {
		lines = append(lines, fmt.Sprintf("Flight ID: %d, From: %s, To: %s, Date: %s",
			f.ID, f.From, f.To, f.Date.Format("02.01.2006")))
	}
	return strings.Join(lines, "\n")
}

// UserInfo formats the GET_USER response. Absent name fields render as
// "?" and an absent age as -1, matching the legacy behavior for null
// columns.
func UserInfo(p model.Profile) string {
	first := p.FirstName
	if first == "" {
		first = "?"
	}
	last := p.LastName
	if last == "" {
		last = "?"
	}
	return fmt.Sprintf("USER=%s,%s,%d", first, last, p.Age)
}
