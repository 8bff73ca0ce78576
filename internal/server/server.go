// Package server contains the TCP listener and the per-connection
// session loop of the command server.
package server

import (
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/aktesher/flight-booking-server/internal/handler"
)

// Server accepts TCP connections and runs one session goroutine per
// client. Sessions are tracked in a registry so Stop can close them all;
// a session removes itself when its connection ends. The accept loop
// never blocks on a session: it hands the connection off and returns to
// Accept immediately.
type Server struct {
	log      zerolog.Logger
	addr     string
	disp     *handler.Dispatcher
	listener net.Listener
	running  atomic.Bool
	nextID   atomic.Uint64
	sessions sync.Map // session id -> *session
	wg       sync.WaitGroup
}

// New returns an unstarted Server that will listen on addr.
func New(addr string, disp *handler.Dispatcher, log zerolog.Logger) *Server {
	return &Server{log: log, addr: addr, disp: disp}
}

// Start binds the listening socket and launches the accept loop. Failing
// to bind is fatal and reported to the caller; a server that is already
// running refuses a second Start.
func (s *Server) Start() error {
	if s.running.Load() {
		return fmt.Errorf("server already running")
	}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	s.listener = ln
	s.running.Store(true)
	s.log.Info().Str("addr", ln.Addr().String()).Msg("server started")

	s.wg.Add(1)
	go s.acceptLoop()
	return nil
}

// Addr returns the bound listener address, or nil before Start. Tests
// bind port 0 and read the assigned port from here.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop closes the listener and every active session connection, then
// waits for the session goroutines to finish. Shutdown is abrupt: a
// session mid-request fails its next read and exits, it is not drained.
func (s *Server) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.sessions.Range(func(_, v any) bool {
		v.(*session).close()
		return true
	})
	s.wg.Wait()
	s.log.Info().Msg("server stopped")
}

// acceptLoop accepts connections until the listener closes. Transient
// accept errors are logged and the loop continues; the error seen after
// Stop closes the listener ends it quietly.
func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.running.Load() {
				return
			}
			s.log.Error().Err(err).Msg("accept failed")
			continue
		}
		id := s.nextID.Add(1)
		sess := newSession(id, conn, s.disp, s.log)
		s.sessions.Store(id, sess)
		// Stop may have run its Range between Accept returning and the
		// Store above; a session registered after that sweep must still
		// be closed or wg.Wait would block on its read loop.
		if !s.running.Load() {
			sess.close()
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.sessions.Delete(id)
			sess.handle()
		}()
	}
}
