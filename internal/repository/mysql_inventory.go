package repository

import (
	"context"
	"database/sql"

	"github.com/aktesher/flight-booking-server/internal/model"
)

// MySQLInventory implements InventoryStore on top of the planes and
// seats tables. Booking relies on a single conditional UPDATE guarded
// by the is_free column, so correctness holds across processes sharing
// the same database, not just across goroutines in this one.
type MySQLInventory struct {
	db *sql.DB
}

// NewMySQLInventory returns a MySQLInventory bound to the given database.
func NewMySQLInventory(db *sql.DB) *MySQLInventory { return &MySQLInventory{db: db} }

// ListFlights returns every provisioned flight ordered by id.
func (r *MySQLInventory) ListFlights(ctx context.Context) ([]model.Flight, error) {
	const q = "SELECT id, `from`, `to`, `date` FROM planes ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	flights := make([]model.Flight, 0)
	for rows.Next() {
		var f model.Flight
		if err := rows.Scan(&f.ID, &f.From, &f.To, &f.Date); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return flights, nil
}

// ListFreeSeats returns the labels of seats that are still free on the
// given flight. Ordering by label keeps the output deterministic.
func (r *MySQLInventory) ListFreeSeats(ctx context.Context, flightID int) ([]string, error) {
	const q = `SELECT number FROM seats WHERE plane_id = ? AND is_free = 1 ORDER BY number`
	rows, err := r.db.QueryContext(ctx, q, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	seats := make([]string, 0)
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		seats = append(seats, label)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return seats, nil
}

// ConditionalBookSeat marks the seat booked iff it is still free. The
// guard lives in the WHERE clause, so concurrent attempts on the same
// seat are linearized by the database and exactly one of them observes
// an affected row.
func (r *MySQLInventory) ConditionalBookSeat(ctx context.Context, flightID int, seat string) (bool, error) {
	const q = `UPDATE seats SET is_free = 0 WHERE plane_id = ? AND number = ? AND is_free = 1`
	res, err := r.db.ExecContext(ctx, q, flightID, seat)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// FlightExists reports whether a flight with the given id is provisioned.
func (r *MySQLInventory) FlightExists(ctx context.Context, flightID int) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM planes WHERE id = ?`, flightID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SeatExists reports whether the seat label exists on the given flight,
// regardless of its booking state.
func (r *MySQLInventory) SeatExists(ctx context.Context, flightID int, seat string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM seats WHERE plane_id = ? AND number = ?`, flightID, seat).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
