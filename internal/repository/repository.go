package repository

import (
	"context"

	"github.com/aktesher/flight-booking-server/internal/model"
)

// InventoryStore is the flight/seat relation consumed by the booking
// coordinator and the listing handlers. ConditionalBookSeat is the only
// mutation: it flips a seat from free to booked iff the seat is still
// free at mutation time and reports whether the transition happened.
// The atomicity guarantee of the whole server rests on that one call;
// FlightExists and SeatExists exist only to classify a failed booking
// as "no such flight", "no such seat" or "already booked".
type InventoryStore interface {
	ListFlights(ctx context.Context) ([]model.Flight, error)
	ListFreeSeats(ctx context.Context, flightID int) ([]string, error)
	ConditionalBookSeat(ctx context.Context, flightID int, seat string) (bool, error)
	FlightExists(ctx context.Context, flightID int) (bool, error)
	SeatExists(ctx context.Context, flightID int, seat string) (bool, error)
}

// UserStore covers accounts, credentials and profiles. These are simple
// keyed reads and writes with no concurrency hazard; one row per key.
type UserStore interface {
	// Authenticate verifies a username/password pair and returns the user
	// id, or ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (int, error)
	// Create registers a new user and returns its id, or ErrUsernameTaken.
	Create(ctx context.Context, username, password string) (int, error)
	// ChangePassword replaces the password of an existing user, or returns
	// ErrUserNotFound.
	ChangePassword(ctx context.Context, username, newPassword string) error
	// GetProfile returns the profile for a user id, or ErrUserNotFound
	// when no profile row exists.
	GetProfile(ctx context.Context, userID int) (model.Profile, error)
	// UpsertProfile creates or updates a profile and reports whether a new
	// row was created. Writing a profile for an unknown user id returns
	// ErrUserNotFound.
	UpsertProfile(ctx context.Context, p model.Profile) (bool, error)
}
