package assignment

import "context"

// AssignmentService defines the interface for assignment operations
type AssignmentService interface {
	// Assign creates assignments for each user; users already assigned to
	// the program are reported, not silently skipped.
	Assign(ctx context.Context, req AssignRequest) ([]AssignmentResponse, error)

	List(ctx context.Context, filter ListFilter) ([]AssignmentResponse, int64, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) error
	MarkAttendance(ctx context.Context, id string, markedBy string) error

	// Register moves the caller's own assignment from Assigned to Registered.
	Register(ctx context.Context, userID, programID string) error

	Delete(ctx context.Context, id string) error
}
