package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aktesher/flight-booking-server/internal/model"
)

func TestMemoryUsers_CreateAndAuthenticate(t *testing.T) {
	users := NewMemoryUsers(bcrypt.MinCost)
	ctx := context.Background()

	id, err := users.Create(ctx, "alice", "secret123")
	require.NoError(t, err)
	require.NotZero(t, id)

	t.Run("valid credentials", func(t *testing.T) {
		got, err := users.Authenticate(ctx, "alice", "secret123")
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := users.Authenticate(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := users.Authenticate(ctx, "bob", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := users.Create(ctx, "alice", "other")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestMemoryUsers_ChangePassword(t *testing.T) {
	users := NewMemoryUsers(bcrypt.MinCost)
	ctx := context.Background()

	_, err := users.Create(ctx, "alice", "old")
	require.NoError(t, err)

	require.NoError(t, users.ChangePassword(ctx, "alice", "new"))

	_, err = users.Authenticate(ctx, "alice", "old")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = users.Authenticate(ctx, "alice", "new")
	assert.NoError(t, err)

	assert.ErrorIs(t, users.ChangePassword(ctx, "ghost", "x"), ErrUserNotFound)
}

func TestMemoryUsers_Profiles(t *testing.T) {
	users := NewMemoryUsers(bcrypt.MinCost)
	ctx := context.Background()

	id, err := users.Create(ctx, "alice", "secret123")
	require.NoError(t, err)

	t.Run("absent until first upsert", func(t *testing.T) {
		_, err := users.GetProfile(ctx, id)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("first upsert creates", func(t *testing.T) {
		created, err := users.UpsertProfile(ctx, model.Profile{UserID: id, FirstName: "Alice", LastName: "Smith", Age: 30})
		require.NoError(t, err)
		assert.True(t, created)

		p, err := users.GetProfile(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Alice", p.FirstName)
		assert.Equal(t, 30, p.Age)
	})

	t.Run("unknown user rejected", func(t *testing.T) {
		_, err := users.UpsertProfile(ctx, model.Profile{UserID: 999, FirstName: "Ghost", LastName: "X", Age: 1})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("second upsert updates", func(t *testing.T) {
		created, err := users.UpsertProfile(ctx, model.Profile{UserID: id, FirstName: "Alice", LastName: "Smith", Age: 31})
		require.NoError(t, err)
		assert.False(t, created)

		p, err := users.GetProfile(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 31, p.Age)
	})
}
