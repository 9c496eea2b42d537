package workinghours

import (
	"context"
	"database/sql"
	"time"

	"hotelops-be/internal/user"
)

type Repository interface {
	Create(ctx context.Context, wh *WorkingHours) error
	GetAll(ctx context.Context) ([]*WorkingHours, error)
	GetByID(ctx context.Context, id string) (*WorkingHours, error)
	GetByUser(ctx context.Context, userID string) ([]*WorkingHours, error)
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) ([]*WorkingHours, error)
	Update(ctx context.Context, id string, wh *WorkingHours) (*WorkingHours, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, wh *WorkingHours) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO working_hours (user_id, date, clock_in, clock_out, total_hours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		wh.UserID, wh.Date, wh.ClockIn, wh.ClockOut, wh.TotalHours,
	).Scan(&wh.ID)
}

const whSelect = `
	SELECT w.id, w.user_id, w.date, w.clock_in, w.clock_out, w.total_hours,
	       u.id, u.name, u.email, u.role
	FROM working_hours w
	LEFT JOIN users u ON u.id = w.user_id`

func scanWorkingHours(row interface{ Scan(...interface{}) error }) (*WorkingHours, error) {
	var (
		wh       WorkingHours
		clockOut sql.NullTime
		total    sql.NullFloat64
		uID      sql.NullString
		uName    sql.NullString
		uMail    sql.NullString
		uRole    sql.NullString
	)
	err := row.Scan(&wh.ID, &wh.UserID, &wh.Date, &wh.ClockIn, &clockOut, &total,
		&uID, &uName, &uMail, &uRole)
	if err != nil {
		return nil, err
	}
	if clockOut.Valid {
		wh.ClockOut = &clockOut.Time
	}
	if total.Valid {
		wh.TotalHours = &total.Float64
	}
	if uID.Valid {
		wh.User = &user.Ref{ID: uID.String, Name: uName.String, Email: uMail.String, Role: user.Role(uRole.String)}
	}
	return &wh, nil
}

func (r *repository) queryMany(ctx context.Context, query string, args ...interface{}) ([]*WorkingHours, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*WorkingHours
	for rows.Next() {
		wh, err := scanWorkingHours(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, wh)
	}
	return entries, rows.Err()
}

func (r *repository) GetAll(ctx context.Context) ([]*WorkingHours, error) {
	return r.queryMany(ctx, whSelect+" ORDER BY w.date DESC")
}

func (r *repository) GetByID(ctx context.Context, id string) (*WorkingHours, error) {
	return scanWorkingHours(r.db.QueryRowContext(ctx, whSelect+" WHERE w.id = $1", id))
}

func (r *repository) GetByUser(ctx context.Context, userID string) ([]*WorkingHours, error) {
	return r.queryMany(ctx, whSelect+" WHERE w.user_id = $1 ORDER BY w.date DESC", userID)
}

func (r *repository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) ([]*WorkingHours, error) {
	return r.queryMany(ctx, whSelect+" WHERE w.user_id = $1 AND w.date = $2 ORDER BY w.clock_in", userID, date)
}

func (r *repository) Update(ctx context.Context, id string, wh *WorkingHours) (*WorkingHours, error) {
	var exists string
	err := r.db.QueryRowContext(ctx, `
		UPDATE working_hours SET
			date        = $2,
			clock_in    = $3,
			clock_out   = $4,
			total_hours = $5
		WHERE id = $1
		RETURNING id`,
		id, wh.Date, wh.ClockIn, wh.ClockOut, wh.TotalHours,
	).Scan(&exists)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM working_hours WHERE id = $1", id)
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
