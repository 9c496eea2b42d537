package user

import (
	"context"
	"database/sql"

	"hotelops-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, input CreateUserInput) (*User, error)
	GetAll(ctx context.Context) ([]*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*User, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = "id, name, email, password, role, hourly_rate, created_at, updated_at"

func scanUser(row interface{ Scan(...interface{}) error }) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.HourlyRate, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) Create(ctx context.Context, input CreateUserInput) (*User, error) {
	log := logger.FromCtx(ctx)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password, role, hourly_rate)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		input.Name, input.Email, input.Password, input.Role, input.HourlyRate,
	)

	u, err := scanUser(row)
	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("email", input.Email),
			zap.Error(err),
		)
		return nil, err
	}

	return u, nil
}

func (r *repository) GetAll(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id,
	)
	return scanUser(row)
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email,
	)
	return scanUser(row)
}

func (r *repository) Update(ctx context.Context, id string, input UpdateUserInput) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE users SET
			name        = COALESCE($2, name),
			email       = COALESCE($3, email),
			password    = COALESCE($4, password),
			role        = COALESCE($5, role),
			hourly_rate = COALESCE($6, hourly_rate),
			updated_at  = NOW()
		WHERE id = $1
		RETURNING `+userColumns,
		id, input.Name, input.Email, input.Password, input.Role, input.HourlyRate,
	)
	return scanUser(row)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
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
