// Package repository defines the storage interfaces consumed by the
// command handlers and the booking coordinator, together with their
// MySQL and in-memory implementations. Sentinel error values allow
// higher layers to distinguish failure scenarios without inspecting
// driver-specific errors: for example ErrUsernameTaken signals a
// registration conflict on every implementation, and ErrUserNotFound
// covers both a missing account and a missing profile row.
package repository

import "errors"

// ErrInvalidCredentials is returned by Authenticate when the username is
// unknown or the password does not match. The two cases are deliberately
// indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUsernameTaken is returned by Create when the username is already
// registered. Every store maps its native duplicate-key failure onto
// this value so handlers answer the conflict uniformly.
var ErrUsernameTaken = errors.New("username already exists")

// ErrUserNotFound is returned when a referenced user or profile row does
// not exist.
var ErrUserNotFound = errors.New("user not found")
