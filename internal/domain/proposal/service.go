package proposal

import "context"

// ProposalService defines the interface for proposal operations
type ProposalService interface {
	// Submit upserts the caller's proposal row for the year resolved from
	// the current date; outside the December-January window it fails with
	// ErrProposalWindowClosed.
	Submit(ctx context.Context, userID string, req SubmitProposalRequest) (*ProposalResponse, error)

	GetMine(ctx context.Context, userID string, year int) (*ProposalResponse, error)
	ListByYear(ctx context.Context, year int) ([]ProposalResponse, error)
	Entertain(ctx context.Context, id string, actorID string, req EntertainRequest) (*ProposalResponse, error)
}
