package handler

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/aktesher/flight-booking-server/internal/protocol"
	"github.com/aktesher/flight-booking-server/internal/repository"
)

// AuthHandler serves LOGIN, REGISTER and CHANGE_PASSWORD.
type AuthHandler struct {
	Users repository.UserStore
	Log   zerolog.Logger
}

// NewAuthHandler returns an AuthHandler over the given user store.
func NewAuthHandler(users repository.UserStore, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{Users: users, Log: log}
}

// Login verifies credentials and binds the user id to the session.
func (h *AuthHandler) Login(ctx context.Context, sess *Session, args []string) string {
	if len(args) < 2 {
		return protocol.RespMissingParams
	}
	id, err := h.Users.Authenticate(ctx, args[0], args[1])
	if errors.Is(err, repository.ErrInvalidCredentials) {
		return protocol.RespInvalidCredentials
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("authenticate failed")
		return protocol.RespInternalError
	}
	sess.UserID = id
	sess.Authenticated = true
	return protocol.LoginSuccess(id)
}

// Register creates a new account. A taken username is a structured
// conflict on every path, never a raw store error.
func (h *AuthHandler) Register(ctx context.Context, sess *Session, args []string) string {
	if len(args) < 2 {
		return protocol.RespMissingParams
	}
	if _, err := h.Users.Create(ctx, args[0], args[1]); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return protocol.RespUsernameExists
		}
		h.Log.Error().Err(err).Msg("register failed")
		return protocol.RespInternalError
	}
	return protocol.RespUserRegistered
}

// ChangePassword replaces the password of an existing user.
func (h *AuthHandler) ChangePassword(ctx context.Context, sess *Session, args []string) string {
	if len(args) < 2 {
		return protocol.RespMissingParams
	}
	if err := h.Users.ChangePassword(ctx, args[0], args[1]); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return protocol.RespUserNotFound
		}
		h.Log.Error().Err(err).Msg("change password failed")
		return protocol.RespInternalError
	}
	return protocol.RespPasswordUpdated
}
