package server

import (
	"bufio"
	"context"
	"net"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/aktesher/flight-booking-server/internal/handler"
)

// session owns one client connection: a strictly sequential
// read-dispatch-write loop plus the per-connection authentication state.
// Requests on one connection are never processed concurrently;
// concurrency exists only across sessions.
type session struct {
	id        uint64
	conn      net.Conn
	disp      *handler.Dispatcher
	log       zerolog.Logger
	state     handler.Session
	closeOnce sync.Once
}

func newSession(id uint64, conn net.Conn, disp *handler.Dispatcher, log zerolog.Logger) *session {
	return &session{
		id:   id,
		conn: conn,
		disp: disp,
		log: log.With().
			Uint64("session_id", id).
			Str("remote", conn.RemoteAddr().String()).
			Logger(),
	}
}

// handle reads newline-terminated requests until the peer disconnects
// or an I/O error occurs, answering each with exactly one response
// block. Connection failures end only this session; they are logged and
// never propagated.
func (s *session) handle() {
	defer s.close()
	s.log.Debug().Msg("client connected")

	reader := bufio.NewReader(s.conn)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if len(strings.TrimSpace(line)) == 0 {
				s.log.Debug().Msg("client disconnected")
				return
			}
			// A final unterminated request is still answered before the
			// session ends.
		}
		resp := s.disp.Dispatch(context.Background(), &s.state, strings.TrimSpace(line))
		if _, werr := s.conn.Write([]byte(resp + "\n")); werr != nil {
			s.log.Warn().Err(werr).Msg("write failed, closing session")
			return
		}
		if err != nil {
			s.log.Debug().Msg("client disconnected")
			return
		}
	}
}

// close shuts the connection down once; safe to call from both the
// session goroutine and Stop.
func (s *session) close() {
	s.closeOnce.Do(func() {
		_ = s.conn.Close()
	})
}
