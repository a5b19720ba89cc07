package employee_dashboard

import (
	"context"
	"time"

	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/domain/program"
)

// EvaluationKey identifies one (user, program) evaluation slot.
type EvaluationKey struct {
	UserID    string
	ProgramID string
}

// EmployeeDashboardRepository fetches the per-user raw rows for the
// employee dashboard.
type EmployeeDashboardRepository interface {
	// FetchUserAssignmentRows returns the user's assignment rows joined
	// with programs whose program end date falls in the year.
	FetchUserAssignmentRows(ctx context.Context, userID string, year int) ([]assignment.WithProgram, error)

	// FetchOverdueCandidates returns the user's Attended assignment rows
	// whose program ended before the cutoff, most recently ended first,
	// capped at limit. The cap applies before the evaluation-existence
	// exclusion.
	FetchOverdueCandidates(ctx context.Context, userID string, endedBefore time.Time, limit int) ([]assignment.WithProgram, error)

	// FilterEvaluated returns, in one batched query, the subset of keys
	// that already have an evaluation.
	FilterEvaluated(ctx context.Context, keys []EvaluationKey) (map[EvaluationKey]bool, error)

	// FetchUpcomingPrograms returns the user's assigned programs starting
	// in (from, from+window], ascending, capped at limit.
	FetchUpcomingPrograms(ctx context.Context, userID string, from time.Time, window time.Duration, limit int) ([]program.Program, error)
}
