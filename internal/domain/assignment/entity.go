package assignment

import (
	"time"

	"github.com/trainhub/training-backend-go/internal/domain/program"
)

type Assignment struct {
	ID                 string
	UserID             string
	ProgramID          string
	Status             Status
	AttendanceMarkedBy *string
	AttendanceMarkedAt *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Status string

const (
	StatusAssigned   Status = "Assigned"
	StatusRegistered Status = "Registered"
	StatusAttended   Status = "Attended"
	StatusNoShow     Status = "No-Show"
	StatusCancelled  Status = "Cancelled"
)

// ValidStatus reports whether s is a known assignment status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusAssigned, StatusRegistered, StatusAttended, StatusNoShow, StatusCancelled:
		return true
	}
	return false
}

// WithProgram is an assignment row joined with its program, the record
// shape every dashboard aggregation consumes. Program fields are pointers
// so a dangling assignment row still aggregates permissively (hours 0,
// category Others).
type WithProgram struct {
	Assignment
	ProgramTitle    *string
	ProgramCategory *program.Category
	ProgramHours    *float64
	ProgramStartAt  *time.Time
	ProgramEndAt    *time.Time
}

// Hours returns the joined program's credited hours, 0 when the join is
// missing.
func (w WithProgram) Hours() float64 {
	if w.ProgramHours == nil {
		return 0
	}
	return *w.ProgramHours
}

// Category returns the joined program's category folded into the closed
// set, Others when the join is missing.
func (w WithProgram) Category() program.Category {
	if w.ProgramCategory == nil {
		return program.CategoryOthers
	}
	return w.ProgramCategory.Normalize()
}

// EndsIn reports whether the joined program's end timestamp falls inside
// the given calendar year, inclusive on both boundaries. Rows without a
// joined program never match.
func (w WithProgram) EndsIn(year int) bool {
	if w.ProgramEndAt == nil {
		return false
	}
	return w.ProgramEndAt.Year() == year
}
