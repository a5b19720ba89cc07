package program

import (
	"context"
	"time"
)

// ProgramRepository defines the interface for program data access
type ProgramRepository interface {
	Create(ctx context.Context, p Program) (*Program, error)
	GetByID(ctx context.Context, id string) (*Program, error)
	List(ctx context.Context, filter ListFilter) ([]Program, int64, error)
	Update(ctx context.Context, p Program) (*Program, error)
	SoftDelete(ctx context.Context, id string) error

	// MarkOngoing flips scheduled programs whose start time has passed.
	MarkOngoing(ctx context.Context, now time.Time) (int64, error)

	// MarkCompleted flips scheduled/ongoing programs whose end time has passed.
	MarkCompleted(ctx context.Context, now time.Time) (int64, error)
}
