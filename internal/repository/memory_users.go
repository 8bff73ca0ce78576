package repository

import (
	"context"
	"sync"

	"github.com/aktesher/flight-booking-server/internal/model"
	"github.com/aktesher/flight-booking-server/internal/utils"
)

// MemoryUsers is an in-process UserStore used by the tests. It applies
// the same bcrypt hashing as the MySQL implementation so that handler
// behavior does not depend on which store is wired in.
type MemoryUsers struct {
	mu       sync.Mutex
	cost     int
	nextID   int
	byName   map[string]*model.User
	profiles map[int]model.Profile
}

// NewMemoryUsers returns an empty MemoryUsers with the given bcrypt cost.
func NewMemoryUsers(bcryptCost int) *MemoryUsers {
	return &MemoryUsers{
		cost:     bcryptCost,
		byName:   make(map[string]*model.User),
		profiles: make(map[int]model.Profile),
	}
}

// Authenticate implements UserStore.
func (m *MemoryUsers) Authenticate(ctx context.Context, username, password string) (int, error) {
	m.mu.Lock()
	u, ok := m.byName[username]
	m.mu.Unlock()
	if !ok || !utils.VerifyPassword(u.PasswordHash, password) {
		return 0, ErrInvalidCredentials
	}
	return u.ID, nil
}

// Create implements UserStore.
func (m *MemoryUsers) Create(ctx context.Context, username, password string) (int, error) {
	hash, err := utils.HashPassword(password, m.cost)
	if err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byName[username]; ok {
		return 0, ErrUsernameTaken
	}
	m.nextID++
	u := &model.User{ID: m.nextID, Username: username, PasswordHash: hash}
	m.byName[username] = u
	return u.ID, nil
}

// ChangePassword implements UserStore.
func (m *MemoryUsers) ChangePassword(ctx context.Context, username, newPassword string) error {
	hash, err := utils.HashPassword(newPassword, m.cost)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byName[username]
	if !ok {
		return ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

// GetProfile implements UserStore.
func (m *MemoryUsers) GetProfile(ctx context.Context, userID int) (model.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		return model.Profile{}, ErrUserNotFound
	}
	return p, nil
}

// UpsertProfile implements UserStore. Like the MySQL store, a profile
// may only be written for an existing account.
func (m *MemoryUsers) UpsertProfile(ctx context.Context, p model.Profile) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	known := false
	for _, u := range m.byName {
		if u.ID == p.UserID {
			known = true
			break
		}
	}
	if !known {
		return false, ErrUserNotFound
	}
	_, existed := m.profiles[p.UserID]
	m.profiles[p.UserID] = p
	return !existed, nil
}

// SetUser seeds an account with a fixed id, bypassing the id sequence.
// Intended for tests that need a known id in the LOGIN response.
func (m *MemoryUsers) SetUser(id int, username, password string) error {
	hash, err := utils.HashPassword(password, m.cost)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byName[username] = &model.User{ID: id, Username: username, PasswordHash: hash}
	if id > m.nextID {
		m.nextID = id
	}
	return nil
}
