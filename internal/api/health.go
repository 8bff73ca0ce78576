// Package api exposes a small HTTP surface next to the TCP protocol:
// liveness and readiness endpoints for load balancers and monitoring.
package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthServer serves /healthz (process liveness) and /readyz (database
// reachability). It runs on its own port and is optional; the TCP
// protocol works without it.
type HealthServer struct {
	e  *echo.Echo
	db *sql.DB
}

// NewHealthServer returns a HealthServer. db may be nil when the server
// runs against the in-memory store; readiness then reports ok.
func NewHealthServer(db *sql.DB) *HealthServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	hs := &HealthServer{e: e, db: db}
	e.GET("/healthz", hs.health)
	e.GET("/readyz", hs.ready)
	return hs
}

// Start blocks serving HTTP on addr until Shutdown.
func (s *HealthServer) Start(addr string) error {
	return s.e.Start(addr)
}

// Shutdown stops the HTTP server gracefully.
func (s *HealthServer) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

func (s *HealthServer) health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (s *HealthServer) ready(c echo.Context) error {
	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			return c.String(http.StatusServiceUnavailable, "database unreachable")
		}
	}
	return c.String(http.StatusOK, "ok")
}
