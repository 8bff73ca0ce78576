// Package booking contains the coordinator that guarantees
// at-most-one-winner semantics for concurrent seat reservation
// attempts.
package booking

import (
	"context"

	"github.com/aktesher/flight-booking-server/internal/repository"
)

// Outcome is the result of a booking attempt.
type Outcome int

const (
	// Booked means this attempt won the seat.
	Booked Outcome = iota
	// AlreadyBooked means the seat exists but was taken, either before
	// the attempt or by a concurrent winner.
	AlreadyBooked
	// FlightNotFound means no flight with the requested id exists.
	FlightNotFound
	// SeatNotFound means the flight exists but has no such seat label.
	SeatNotFound
)

// Coordinator serializes conflicting booking attempts per seat without
// serializing unrelated ones. It holds no locks of its own: atomicity is
// delegated entirely to the store's conditional update, so the guarantee
// survives multiple server processes sharing one database. The existence
// probes run only after a failed transition and never influence the
// atomicity decision.
type Coordinator struct {
	inv repository.InventoryStore
}

// NewCoordinator returns a Coordinator backed by the given inventory.
func NewCoordinator(inv repository.InventoryStore) *Coordinator {
	return &Coordinator{inv: inv}
}

// AttemptBook tries to reserve the seat. Under N concurrent attempts on
// the same (flight, seat) key exactly one returns Booked and the rest
// AlreadyBooked; attempts on a missing flight or seat mutate nothing.
func (c *Coordinator) AttemptBook(ctx context.Context, flightID int, seat string) (Outcome, error) {
	booked, err := c.inv.ConditionalBookSeat(ctx, flightID, seat)
	if err != nil {
		return AlreadyBooked, err
	}
	if booked {
		return Booked, nil
	}

	// The transition did not happen: classify why.
	flightOK, err := c.inv.FlightExists(ctx, flightID)
	if err != nil {
		return AlreadyBooked, err
	}
	if !flightOK {
		return FlightNotFound, nil
	}
	seatOK, err := c.inv.SeatExists(ctx, flightID, seat)
	if err != nil {
		return AlreadyBooked, err
	}
	if !seatOK {
		return SeatNotFound, nil
	}
	return AlreadyBooked, nil
}
