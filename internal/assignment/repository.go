package assignment

import (
	"context"
	"database/sql"

	"hotelops-be/internal/user"
)

type Repository interface {
	Create(ctx context.Context, a *Assignment) error
	GetAll(ctx context.Context) ([]*Assignment, error)
	GetByID(ctx context.Context, id string) (*Assignment, error)
	Update(ctx context.Context, id string, input UpdateAssignmentInput) (*Assignment, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Assignment) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO order_assignments (user_id, order_id, status, date_assigned)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		a.UserID, a.OrderID, a.Status, a.DateAssigned,
	).Scan(&a.ID)
}

const assignmentSelect = `
	SELECT a.id, a.user_id, a.order_id, a.status, a.date_assigned,
	       u.id, u.name, u.email, u.role
	FROM order_assignments a
	LEFT JOIN users u ON u.id = a.user_id`

func scanAssignment(row interface{ Scan(...interface{}) error }) (*Assignment, error) {
	var (
		a     Assignment
		uID   sql.NullString
		uName sql.NullString
		uMail sql.NullString
		uRole sql.NullString
	)
	err := row.Scan(&a.ID, &a.UserID, &a.OrderID, &a.Status, &a.DateAssigned,
		&uID, &uName, &uMail, &uRole)
	if err != nil {
		return nil, err
	}
	if uID.Valid {
		a.User = &user.Ref{ID: uID.String, Name: uName.String, Email: uMail.String, Role: user.Role(uRole.String)}
	}
	return &a, nil
}

func (r *repository) GetAll(ctx context.Context) ([]*Assignment, error) {
	rows, err := r.db.QueryContext(ctx, assignmentSelect+" ORDER BY a.date_assigned DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Assignment, error) {
	return scanAssignment(r.db.QueryRowContext(ctx, assignmentSelect+" WHERE a.id = $1", id))
}

func (r *repository) Update(ctx context.Context, id string, input UpdateAssignmentInput) (*Assignment, error) {
	var exists string
	err := r.db.QueryRowContext(ctx, `
		UPDATE order_assignments SET
			user_id  = COALESCE($2, user_id),
			order_id = COALESCE($3, order_id),
			status   = COALESCE($4, status)
		WHERE id = $1
		RETURNING id`,
		id, input.User, input.OrderID, input.Status,
	).Scan(&exists)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM order_assignments WHERE id = $1", id)
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
