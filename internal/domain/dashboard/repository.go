package dashboard

import (
	"context"
	"time"

	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/domain/evaluation"
	"github.com/trainhub/training-backend-go/internal/domain/profile"
	"github.com/trainhub/training-backend-go/internal/domain/program"
)

// DashboardRepository fetches the raw record sets the aggregation engine
// reduces in memory. Any error here aborts the whole aggregation; no
// partial snapshot is ever returned.
type DashboardRepository interface {
	// FetchProfiles returns all non-deleted profiles.
	FetchProfiles(ctx context.Context) ([]profile.Profile, error)

	// FetchAssignmentRows returns all assignment rows joined with their
	// programs whose program end date falls in the year. Rows with a
	// missing join are still returned.
	FetchAssignmentRows(ctx context.Context, year int) ([]assignment.WithProgram, error)

	// FetchEvaluations returns evaluations submitted in the year.
	FetchEvaluations(ctx context.Context, year int) ([]evaluation.Evaluation, error)

	// FetchUpcomingPrograms returns programs starting in (from, from+window],
	// ascending by start time, capped at limit.
	FetchUpcomingPrograms(ctx context.Context, from time.Time, window time.Duration, limit int) ([]program.Program, error)

	// FetchProgramYears returns the distinct years program start dates
	// fall in, descending.
	FetchProgramYears(ctx context.Context) ([]int, error)
}
