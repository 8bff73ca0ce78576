package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/aktesher/flight-booking-server/internal/booking"
	"github.com/aktesher/flight-booking-server/internal/protocol"
	"github.com/aktesher/flight-booking-server/internal/queue"
)

// EventPublisher publishes booking events. It is satisfied by
// queue.Publisher; a nil publisher disables eventing.
type EventPublisher interface {
	PublishSeatBooked(ctx context.Context, event queue.SeatBookedEvent) error
}

// BookingHandler serves BOOK_SEAT through the coordinator.
type BookingHandler struct {
	Coord  *booking.Coordinator
	Events EventPublisher
	Log    zerolog.Logger
}

// NewBookingHandler returns a BookingHandler. events may be nil.
func NewBookingHandler(coord *booking.Coordinator, events EventPublisher, log zerolog.Logger) *BookingHandler {
	return &BookingHandler{Coord: coord, Events: events, Log: log}
}

// BookSeat validates the arguments, runs the booking attempt and maps
// the outcome onto the protocol response. Validation failures never
// reach the store.
func (h *BookingHandler) BookSeat(ctx context.Context, sess *Session, args []string) string {
	if len(args) < 2 {
		return protocol.RespMissingParams
	}
	flightID, err := strconv.Atoi(args[0])
	if err != nil {
		return protocol.RespInvalidFlightID
	}
	seat := args[1]

	outcome, err := h.Coord.AttemptBook(ctx, flightID, seat)
	if err != nil {
		h.Log.Error().Err(err).Int("flight_id", flightID).Str("seat", seat).Msg("booking attempt failed")
		return protocol.RespInternalError
	}
	switch outcome {
	case booking.Booked:
		h.Log.Info().Int("flight_id", flightID).Str("seat", seat).Int("user_id", sess.UserID).Msg("seat booked")
		h.publishBooked(flightID, seat, sess.UserID)
		return protocol.BookSuccess(seat, flightID)
	case booking.FlightNotFound:
		return protocol.RespFlightNotFound
	case booking.SeatNotFound:
		return protocol.RespSeatNotFound
	default:
		return protocol.RespSeatTaken
	}
}

// publishBooked emits the event in the background; a broker outage must
// not delay or fail the booking response.
func (h *BookingHandler) publishBooked(flightID int, seat string, userID int) {
	if h.Events == nil {
		return
	}
	ev := queue.SeatBookedEvent{
		FlightID: flightID,
		Seat:     seat,
		UserID:   userID,
		BookedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = h.Events.PublishSeatBooked(ctx, ev)
	}()
}
