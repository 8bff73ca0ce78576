package handler

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/aktesher/flight-booking-server/internal/cache"
	"github.com/aktesher/flight-booking-server/internal/protocol"
	"github.com/aktesher/flight-booking-server/internal/repository"
)

// flightsCacheKey is the single cache entry for the formatted
// GET_FLIGHTS block.
const flightsCacheKey = "flights:all"

// errNoFlights distinguishes an empty listing from a store failure so
// the empty case is answered correctly but never cached.
var errNoFlights = errors.New("no flights available")

// FlightHandler serves GET_FLIGHTS and GET_SEATS. The flight listing is
// cached because flights are immutable once provisioned; seat listings
// are always read fresh since bookings change them.
type FlightHandler struct {
	Inv      repository.InventoryStore
	Cache    cache.Cacher
	CacheTTL time.Duration
	Log      zerolog.Logger
}

// NewFlightHandler returns a FlightHandler. cache may be nil to disable
// listing caching.
func NewFlightHandler(inv repository.InventoryStore, c cache.Cacher, ttl time.Duration, log zerolog.Logger) *FlightHandler {
	return &FlightHandler{Inv: inv, Cache: c, CacheTTL: ttl, Log: log}
}

// GetFlights returns the multi-line flight block.
func (h *FlightHandler) GetFlights(ctx context.Context, sess *Session, args []string) string {
	fetch := func(ctx context.Context) (string, error) {
		flights, err := h.Inv.ListFlights(ctx)
		if err != nil {
			return "", err
		}
		if len(flights) == 0 {
			return "", errNoFlights
		}
		return protocol.FlightList(flights), nil
	}

	var (
		out string
		err error
	)
	if h.Cache != nil {
		out, err = h.Cache.GetOrFetch(ctx, flightsCacheKey, h.CacheTTL, fetch)
	} else {
		out, err = fetch(ctx)
	}
	if errors.Is(err, errNoFlights) {
		return protocol.RespNoFlights
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("list flights failed")
		return protocol.RespInternalError
	}
	return out
}

// GetSeats returns the free seat labels for one flight. A flight with
// no free seats and a flight that does not exist produce the same
// response; BOOK_SEAT is where the two cases are told apart.
func (h *FlightHandler) GetSeats(ctx context.Context, sess *Session, args []string) string {
	if len(args) < 1 {
		return protocol.RespMissingParams
	}
	flightID, err := strconv.Atoi(args[0])
	if err != nil {
		return protocol.RespInvalidFlightID
	}
	labels, err := h.Inv.ListFreeSeats(ctx, flightID)
	if err != nil {
		h.Log.Error().Err(err).Int("flight_id", flightID).Msg("list seats failed")
		return protocol.RespInternalError
	}
	if len(labels) == 0 {
		return protocol.RespNoSeats
	}
	return protocol.SeatList(labels)
}
