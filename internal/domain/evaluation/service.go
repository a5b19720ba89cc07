package evaluation

import "context"

// EvaluationService defines the interface for evaluation operations
type EvaluationService interface {
	// Submit stores the caller's questionnaire for a program. The caller
	// must hold an Attended assignment and must not have evaluated the
	// program before.
	Submit(ctx context.Context, userID string, req SubmitEvaluationRequest) (*EvaluationResponse, error)

	List(ctx context.Context, filter ListFilter) ([]EvaluationResponse, int64, error)
}
