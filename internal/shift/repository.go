package shift

import (
	"context"
	"database/sql"

	"hotelops-be/internal/user"
)

type Repository interface {
	Create(ctx context.Context, s *Shift) error
	GetAll(ctx context.Context) ([]*Shift, error)
	GetByID(ctx context.Context, id string) (*Shift, error)
	Update(ctx context.Context, id string, input UpdateShiftInput) (*Shift, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Shift) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO shifts (user_id, start_time, end_time, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		s.UserID, s.StartTime, s.EndTime, s.Status,
	).Scan(&s.ID)
}

const shiftSelect = `
	SELECT s.id, s.user_id, s.start_time, s.end_time, s.status,
	       u.id, u.name, u.email, u.role
	FROM shifts s
	LEFT JOIN users u ON u.id = s.user_id`

func scanShift(row interface{ Scan(...interface{}) error }) (*Shift, error) {
	var (
		s     Shift
		uID   sql.NullString
		uName sql.NullString
		uMail sql.NullString
		uRole sql.NullString
	)
	err := row.Scan(&s.ID, &s.UserID, &s.StartTime, &s.EndTime, &s.Status,
		&uID, &uName, &uMail, &uRole)
	if err != nil {
		return nil, err
	}
	if uID.Valid {
		s.User = &user.Ref{ID: uID.String, Name: uName.String, Email: uMail.String, Role: user.Role(uRole.String)}
	}
	return &s, nil
}

func (r *repository) GetAll(ctx context.Context) ([]*Shift, error) {
	rows, err := r.db.QueryContext(ctx, shiftSelect+" ORDER BY s.start_time DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []*Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Shift, error) {
	return scanShift(r.db.QueryRowContext(ctx, shiftSelect+" WHERE s.id = $1", id))
}

func (r *repository) Update(ctx context.Context, id string, input UpdateShiftInput) (*Shift, error) {
	var exists string
	err := r.db.QueryRowContext(ctx, `
		UPDATE shifts SET
			user_id    = COALESCE($2, user_id),
			start_time = COALESCE($3, start_time),
			end_time   = COALESCE($4, end_time),
			status     = COALESCE($5, status)
		WHERE id = $1
		RETURNING id`,
		id, input.User, input.StartTime, input.EndTime, input.Status,
	).Scan(&exists)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM shifts WHERE id = $1", id)
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
