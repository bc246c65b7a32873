package repository

import (
	"context"
	"database/sql"
	"math"

	"github.com/rachtours/tour-reservation/internal/model"
)

// ReservationRepo provides CRUD and aggregation over the reservations
// table.  All access is single-row inserts, updates, deletes and selects;
// there are no cross-row invariants so no transactions are needed.
// Timestamps are stored in UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying handle.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

const reservationColumns = `id, name, phone, tour, tours,
       DATE_FORMAT(date, '%Y-%m-%d'), time, people, total_price, transport,
       COALESCE(special_request, ''), COALESCE(confirmation_message, ''),
       status, created_at`

// Create inserts a new reservation with status pending and populates the
// generated ID and status on the record.  This is the durability point of
// the submission pipeline: callers must not send any notification before
// Create returns nil.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	const q = `INSERT INTO reservations
		(name, phone, tour, tours, date, time, people, total_price, transport, special_request, confirmation_message, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'pending')`
	result, err := r.db.ExecContext(ctx, q,
		res.Name, res.Phone, res.TourNames, res.Tours, res.Date, res.Time,
		res.Guests, res.TotalPrice, res.Transport, res.SpecialRequest,
		res.ConfirmationMessage)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	res.Status = model.StatusPending
	return nil
}

// ListFilter narrows and pages a reservation listing.  Status must already
// be validated by the caller; Search matches name or phone as a substring.
type ListFilter struct {
	Status string
	Search string
	Limit  int
	Offset int
}

// List returns reservations newest first.  Limit is clamped to [1,100]
// and offset to >= 0 so a hostile query string cannot dump the table.
func (r *ReservationRepo) List(ctx context.Context, f ListFilter) ([]model.Reservation, error) {
	limit := f.Limit
	if limit < 1 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	q := `SELECT ` + reservationColumns + ` FROM reservations WHERE 1=1`
	args := []any{}
	if f.Status != "" {
		q += " AND status = ?"
		args = append(args, f.Status)
	}
	if f.Search != "" {
		q += " AND (name LIKE ? OR phone LIKE ?)"
		pat := "%" + f.Search + "%"
		args = append(args, pat, pat)
	}
	q += " ORDER BY id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Reservation, 0, limit)
	for rows.Next() {
		var res model.Reservation
		if err := scanReservation(rows, &res); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// GetByID returns one reservation or ErrNotFound.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
	var res model.Reservation
	err := scanReservation(r.db.QueryRowContext(ctx, q, id), &res)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateStatus moves a reservation to a new status.  The caller validates
// the status value; an unknown id yields ErrNotFound.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE reservations SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a reservation.  An unknown id yields ErrNotFound.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM reservations WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats aggregates dashboard numbers in a single scan.  Revenue only
// counts reservations marked successful; every SUM is coalesced so an
// empty table yields zeros, and revenue is rounded to cents so the JSON
// never carries DECIMAL accumulator noise.
func (r *ReservationRepo) Stats(ctx context.Context) (*model.Stats, error) {
	const q = `SELECT
		COUNT(*),
		COALESCE(SUM(people), 0),
		COALESCE(SUM(CASE WHEN status = 'successful' THEN total_price ELSE 0 END), 0),
		COALESCE(SUM(status = 'pending'), 0),
		COALESCE(SUM(status = 'confirmed'), 0),
		COALESCE(SUM(status = 'cancelled'), 0),
		COALESCE(SUM(status = 'successful'), 0),
		COALESCE(SUM(CASE WHEN status = 'pending' THEN people ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN status = 'confirmed' THEN people ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN status = 'cancelled' THEN people ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN status = 'successful' THEN people ELSE 0 END), 0)
	FROM reservations`
	var st model.Stats
	err := r.db.QueryRowContext(ctx, q).Scan(
		&st.TotalBookings, &st.TotalGuests, &st.TotalRevenue,
		&st.PendingCount, &st.ConfirmedCount, &st.CancelledCount, &st.SuccessfulCount,
		&st.PendingGuests, &st.ConfirmedGuests, &st.CancelledGuests, &st.SuccessfulGuests,
	)
	if err != nil {
		return nil, err
	}
	st.TotalRevenue = math.Round(st.TotalRevenue*100) / 100
	return &st, nil
}

// scanTarget lets scanReservation work for both *sql.Row and *sql.Rows.
type scanTarget interface {
	Scan(dest ...any) error
}

func scanReservation(row scanTarget, res *model.Reservation) error {
	return row.Scan(
		&res.ID, &res.Name, &res.Phone, &res.TourNames, &res.Tours,
		&res.Date, &res.Time, &res.Guests, &res.TotalPrice, &res.Transport,
		&res.SpecialRequest, &res.ConfirmationMessage, &res.Status, &res.CreatedAt,
	)
}
