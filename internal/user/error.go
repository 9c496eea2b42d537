package user

import "hotelops-be/internal/apperr"

var (
	ErrUserNotFound       = apperr.NotFound("User not found")
	ErrInvalidCredentials = apperr.Unauthorized("Invalid credentials")
	ErrEmailExists        = apperr.Validation("Email already registered")

	// PgUniqueViolation is the Postgres error code for unique constraint hits.
	PgUniqueViolation = "23505"
)
