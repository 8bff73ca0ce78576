package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/aktesher/flight-booking-server/internal/model"
	"github.com/aktesher/flight-booking-server/internal/utils"
)

// MySQLUsers implements UserStore on the users and users_info tables.
// Passwords are stored as bcrypt hashes.
type MySQLUsers struct {
	db   *sql.DB
	cost int
}

// NewMySQLUsers returns a MySQLUsers using the given bcrypt cost for all
// password hashing.
func NewMySQLUsers(db *sql.DB, bcryptCost int) *MySQLUsers {
	return &MySQLUsers{db: db, cost: bcryptCost}
}

// Authenticate looks up the user by username and verifies the password
// against the stored hash. Unknown username and wrong password both
// return ErrInvalidCredentials.
func (r *MySQLUsers) Authenticate(ctx context.Context, username, password string) (int, error) {
	var (
		id   int
		hash string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, password_hash FROM users WHERE username = ? LIMIT 1`,
		username).Scan(&id, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrInvalidCredentials
	}
	if err != nil {
		return 0, err
	}
	if !utils.VerifyPassword(hash, password) {
		return 0, ErrInvalidCredentials
	}
	return id, nil
}

// Create inserts a new user and returns its id. A duplicate username is
// reported as ErrUsernameTaken (MySQL error 1062 on the unique index).
func (r *MySQLUsers) Create(ctx context.Context, username, password string) (int, error) {
	hash, err := utils.HashPassword(password, r.cost)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash) VALUES (?, ?)`,
		username, hash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// ChangePassword rehashes and stores a new password for the named user.
func (r *MySQLUsers) ChangePassword(ctx context.Context, username, newPassword string) error {
	hash, err := utils.HashPassword(newPassword, r.cost)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ? WHERE username = ?`,
		hash, username)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GetProfile loads the users_info row for a user. Missing optional
// columns are mapped to the empty string and -1 so the handler can
// format them the way the protocol expects.
func (r *MySQLUsers) GetProfile(ctx context.Context, userID int) (model.Profile, error) {
	var (
		first sql.NullString
		last  sql.NullString
		age   sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT first_name, last_name, age FROM users_info WHERE user_id = ? LIMIT 1`,
		userID).Scan(&first, &last, &age)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, ErrUserNotFound
	}
	if err != nil {
		return model.Profile{}, err
	}
	p := model.Profile{UserID: userID, Age: -1}
	if first.Valid {
		p.FirstName = first.String
	}
	if last.Valid {
		p.LastName = last.String
	}
	if age.Valid {
		p.Age = int(age.Int64)
	}
	return p, nil
}

// UpsertProfile writes the users_info row for a user, creating it when
// absent. The ON DUPLICATE KEY form keeps the check and the write in one
// statement; created reports whether a new row was inserted. Inserting
// for a user id missing from users trips the foreign key (MySQL error
// 1452), which is reported as ErrUserNotFound.
func (r *MySQLUsers) UpsertProfile(ctx context.Context, p model.Profile) (bool, error) {
	const q = `INSERT INTO users_info (user_id, first_name, last_name, age)
	           VALUES (?, ?, ?, ?)
	           ON DUPLICATE KEY UPDATE first_name = VALUES(first_name),
	                                   last_name = VALUES(last_name),
	                                   age = VALUES(age)`
	res, err := r.db.ExecContext(ctx, q, p.UserID, p.FirstName, p.LastName, p.Age)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1452") {
			return false, ErrUserNotFound
		}
		return false, err
	}
	// MySQL reports 1 affected row for an insert and 2 for an update.
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
