package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/aktesher/flight-booking-server/internal/model"
	"github.com/aktesher/flight-booking-server/internal/protocol"
	"github.com/aktesher/flight-booking-server/internal/repository"
)

// UserHandler serves GET_USER and UPDATE_USER.
type UserHandler struct {
	Users repository.UserStore
	Log   zerolog.Logger
}

// NewUserHandler returns a UserHandler over the given user store.
func NewUserHandler(users repository.UserStore, log zerolog.Logger) *UserHandler {
	return &UserHandler{Users: users, Log: log}
}

// GetUser returns the profile line for a user id.
func (h *UserHandler) GetUser(ctx context.Context, sess *Session, args []string) string {
	if len(args) < 1 {
		return protocol.RespMissingParams
	}
	userID, err := strconv.Atoi(args[0])
	if err != nil {
		return protocol.RespInvalidUserID
	}
	p, err := h.Users.GetProfile(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return protocol.RespUserNotFound
	}
	if err != nil {
		h.Log.Error().Err(err).Int("user_id", userID).Msg("get profile failed")
		return protocol.RespInternalError
	}
	return protocol.UserInfo(p)
}

// UpdateUser creates or updates the profile for a user id. The response
// reports which of the two happened.
func (h *UserHandler) UpdateUser(ctx context.Context, sess *Session, args []string) string {
	if len(args) < 4 {
		return protocol.RespMissingParams
	}
	userID, err := strconv.Atoi(args[0])
	if err != nil {
		return protocol.RespInvalidUserID
	}
	age, err := strconv.Atoi(args[3])
	if err != nil {
		return protocol.RespInvalidAge
	}
	created, err := h.Users.UpsertProfile(ctx, model.Profile{
		UserID:    userID,
		FirstName: args[1],
		LastName:  args[2],
		Age:       age,
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		return protocol.RespUserNotFound
	}
	if err != nil {
		h.Log.Error().Err(err).Int("user_id", userID).Msg("upsert profile failed")
		return protocol.RespInternalError
	}
	if created {
		return protocol.RespUserInfoAdded
	}
	return protocol.RespUserInfoUpdated
}
