package program

import "context"

// ProgramService defines the interface for program operations
type ProgramService interface {
	Create(ctx context.Context, actorID string, req CreateProgramRequest) (*ProgramResponse, error)
	GetByID(ctx context.Context, id string) (*ProgramResponse, error)
	List(ctx context.Context, filter ListFilter) ([]ProgramResponse, int64, error)
	Update(ctx context.Context, id string, req UpdateProgramRequest) (*ProgramResponse, error)
	Delete(ctx context.Context, id string) error
}
