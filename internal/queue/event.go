// Package queue defines the booking event payload exchanged over the
// message broker, plus the publisher and the background consumer.
package queue

// SeatBookedEvent is published when a seat booking succeeds. It carries
// enough information for downstream consumers to log or notify without
// querying the primary database. UserID is zero when the booking client
// never authenticated on its session.
type SeatBookedEvent struct {
	FlightID int    `json:"flight_id"`
	Seat     string `json:"seat"`
	UserID   int    `json:"user_id,omitempty"`
	BookedAt string `json:"booked_at"`
}
