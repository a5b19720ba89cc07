package proposal

import "context"

// ProposalRepository defines the interface for proposal data access
type ProposalRepository interface {
	// Upsert inserts or updates the (user, year) row.
	Upsert(ctx context.Context, p ProposedTraining) (*ProposedTraining, error)

	GetByUserAndYear(ctx context.Context, userID string, year int) (*ProposedTraining, error)
	ListByYear(ctx context.Context, year int) ([]ProposedTraining, error)

	// Entertain marks one slot entertained, recording actor and time.
	Entertain(ctx context.Context, id string, slot Slot, actorID string) (*ProposedTraining, error)
}
