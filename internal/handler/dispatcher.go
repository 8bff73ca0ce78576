// Package handler implements the command handlers behind the wire
// protocol and the dispatcher that routes parsed requests to them.
package handler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/aktesher/flight-booking-server/internal/protocol"
)

// requestTimeout bounds the store work done for a single request so a
// stalled database cannot wedge a session forever.
const requestTimeout = 5 * time.Second

// Session is the per-connection state visible to handlers: the
// authenticated user id once LOGIN succeeds. The protocol has no token
// model; authentication lives and dies with the TCP connection.
type Session struct {
	UserID        int
	Authenticated bool
}

// Func executes one command. It must return a response string for every
// input; errors become protocol error lines, never Go errors.
type Func func(ctx context.Context, sess *Session, args []string) string

// Dispatcher owns the command table. It normalizes and routes one
// request line per call and contains every handler failure: malformed
// input, unknown commands and panics all come back as response strings
// so the session loop never terminates because one request went wrong.
type Dispatcher struct {
	log      zerolog.Logger
	handlers map[string]Func
}

// NewDispatcher builds the command table from the given handler groups.
func NewDispatcher(log zerolog.Logger, auth *AuthHandler, flights *FlightHandler, booking *BookingHandler, users *UserHandler) *Dispatcher {
	return &Dispatcher{
		log: log,
		handlers: map[string]Func{
			protocol.CmdLogin:          auth.Login,
			protocol.CmdRegister:       auth.Register,
			protocol.CmdChangePassword: auth.ChangePassword,
			protocol.CmdGetFlights:     flights.GetFlights,
			protocol.CmdGetSeats:       flights.GetSeats,
			protocol.CmdBookSeat:       booking.BookSeat,
			protocol.CmdGetUser:        users.GetUser,
			protocol.CmdUpdateUser:     users.UpdateUser,
		},
	}
}

// Dispatch parses one request line and executes the matching handler,
// returning the response to write back. sess is mutated by LOGIN.
func (d *Dispatcher) Dispatch(ctx context.Context, sess *Session, line string) (resp string) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Interface("panic", r).Str("request", line).Msg("handler panicked")
			resp = protocol.RespInternalError
		}
	}()

	req, ok := protocol.Parse(line)
	if !ok {
		return protocol.RespInvalidRequest
	}
	h, ok := d.handlers[req.Command]
	if !ok {
		return protocol.RespUnknownCommand
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	return h(ctx, sess, req.Args)
}
