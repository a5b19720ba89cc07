package employee_dashboard

import "context"

// EmployeeDashboardService defines the interface for the per-user
// dashboard aggregation
type EmployeeDashboardService interface {
	// GetDashboard composes the user's snapshot for a year. A zero year
	// means the current calendar year.
	GetDashboard(ctx context.Context, userID string, year int) (*EmployeeDashboardResponse, error)

	GetOverdueEvaluations(ctx context.Context, userID string) ([]OverdueEvaluation, error)
}
