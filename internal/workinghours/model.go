package workinghours

import (
	"time"

	"hotelops-be/internal/user"
)

type WorkingHours struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Date       time.Time  `json:"date"`
	ClockIn    time.Time  `json:"clockIn"`
	ClockOut   *time.Time `json:"clockOut,omitempty"`
	TotalHours *float64   `json:"totalHours,omitempty"`

	User *user.Ref `json:"user,omitempty"`
}

type CreateWorkingHoursInput struct {
	User     string     `json:"user"`
	Date     time.Time  `json:"date"`
	ClockIn  time.Time  `json:"clockIn"`
	ClockOut *time.Time `json:"clockOut"`
}

type UpdateWorkingHoursInput struct {
	Date     *time.Time `json:"date"`
	ClockIn  *time.Time `json:"clockIn"`
	ClockOut *time.Time `json:"clockOut"`
}

// DeriveTotalHours computes the shift length in hours, nil until clock-out.
func DeriveTotalHours(clockIn time.Time, clockOut *time.Time) *float64 {
	if clockOut == nil {
		return nil
	}
	hours := clockOut.Sub(clockIn).Hours()
	return &hours
}
