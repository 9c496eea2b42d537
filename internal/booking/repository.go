package booking

import (
	"context"
	"database/sql"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetAll(ctx context.Context) ([]*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	Update(ctx context.Context, id string, input UpdateBookingInput) (*Booking, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const bookingColumns = "id, user_id, name, email, checkin_date, checkout_date, number_of_guests, nic, advance, status, created_at, updated_at"

func scanBooking(row interface{ Scan(...interface{}) error }) (*Booking, error) {
	var b Booking
	err := row.Scan(&b.ID, &b.UserID, &b.Name, &b.Email, &b.CheckinDate, &b.CheckoutDate,
		&b.NumberOfGuests, &b.NIC, &b.Advance, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Create(ctx context.Context, b *Booking) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO bookings (user_id, name, email, checkin_date, checkout_date, number_of_guests, nic, advance, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		b.UserID, b.Name, b.Email, b.CheckinDate, b.CheckoutDate,
		b.NumberOfGuests, b.NIC, b.Advance, b.Status,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *repository) GetAll(ctx context.Context) ([]*Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	return scanBooking(r.db.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id = $1", id,
	))
}

func (r *repository) Update(ctx context.Context, id string, input UpdateBookingInput) (*Booking, error) {
	return scanBooking(r.db.QueryRowContext(ctx, `
		UPDATE bookings SET
			name             = COALESCE($2, name),
			email            = COALESCE($3, email),
			checkin_date     = COALESCE($4, checkin_date),
			checkout_date    = COALESCE($5, checkout_date),
			number_of_guests = COALESCE($6, number_of_guests),
			nic              = COALESCE($7, nic),
			advance          = COALESCE($8, advance),
			status           = COALESCE($9, status),
			updated_at       = NOW()
		WHERE id = $1
		RETURNING `+bookingColumns,
		id, input.Name, input.Email, input.CheckinDate, input.CheckoutDate,
		input.NumberOfGuests, input.NIC, input.Advance, input.Status,
	))
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM bookings WHERE id = $1", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
