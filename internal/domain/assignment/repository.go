package assignment

import "context"

// AssignmentRepository defines the interface for assignment data access
type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (*Assignment, error)
	GetByID(ctx context.Context, id string) (*Assignment, error)
	GetByUserAndProgram(ctx context.Context, userID, programID string) (*Assignment, error)

	// List returns assignment rows joined with their programs.
	List(ctx context.Context, filter ListFilter) ([]WithProgram, int64, error)

	UpdateStatus(ctx context.Context, id string, status Status) error
	MarkAttendance(ctx context.Context, id string, markedBy string) error
	Delete(ctx context.Context, id string) error
}
