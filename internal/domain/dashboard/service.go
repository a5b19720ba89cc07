package dashboard

import "context"

// DashboardService defines the interface for admin dashboard aggregation
type DashboardService interface {
	// GetDashboard composes the full snapshot for a year. A zero year
	// means the current calendar year.
	GetDashboard(ctx context.Context, userID string, year int) (*DashboardResponse, error)

	GetDepartmentCompliance(ctx context.Context, year int) ([]DepartmentCompliance, error)
	GetMonthlyTrend(ctx context.Context, year int) ([]MonthlyTrendEntry, error)
	GetLeaderboard(ctx context.Context, userID string, year int) (*LeaderboardResponse, error)
	GetEvaluationSummary(ctx context.Context, year int) (*EvaluationSummary, error)
}
