package employee_dashboard

import "github.com/trainhub/training-backend-go/internal/domain/dashboard"

// ========== COMBINED EMPLOYEE DASHBOARD ==========

// EmployeeDashboardResponse is the per-user snapshot: strict attended-only
// hour totals, category breakdown, upcoming programs and overdue
// evaluations.
type EmployeeDashboardResponse struct {
	Stats              StatsResponse               `json:"stats"`
	HoursByCategory    []CategoryHours             `json:"hours_by_category"`
	UpcomingPrograms   []dashboard.UpcomingProgram `json:"upcoming_programs"`
	OverdueEvaluations []OverdueEvaluation         `json:"overdue_evaluations"`
	MyRank             *dashboard.LeaderboardEntry `json:"my_rank,omitempty"`
	Year               int                         `json:"year"`
}

// StatsResponse carries the top-card numbers.
type StatsResponse struct {
	AttendedHours     float64 `json:"attended_hours"`
	CompliancePercent int     `json:"compliance_percent"`
	TargetHours       float64 `json:"target_hours"`
	AssignedCount     int     `json:"assigned_count"`
	AttendedCount     int     `json:"attended_count"`
}

// CategoryHours is one bucket of the fixed five-category breakdown.
type CategoryHours struct {
	Category string  `json:"category"`
	Hours    float64 `json:"hours"`
}

// OverdueEvaluation is an attended assignment whose program ended past the
// grace period with no evaluation submitted yet.
type OverdueEvaluation struct {
	AssignmentID string  `json:"assignment_id"`
	ProgramID    string  `json:"program_id"`
	Title        string  `json:"title"`
	EndedAt      string  `json:"ended_at"`
	DaysOverdue  int     `json:"days_overdue"`
	Hours        float64 `json:"hours"`
}
