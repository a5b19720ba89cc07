package evaluation

import "context"

// EvaluationRepository defines the interface for evaluation data access
type EvaluationRepository interface {
	Create(ctx context.Context, e Evaluation) (*Evaluation, error)
	GetByID(ctx context.Context, id string) (*Evaluation, error)
	Exists(ctx context.Context, userID, programID string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]Evaluation, int64, error)
}
