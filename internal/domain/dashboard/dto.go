package dashboard

// ========== COMBINED ADMIN DASHBOARD ==========

// DashboardResponse is the combined snapshot for the admin dashboard
// endpoint. Every field is recomputed from raw rows on each call; nothing
// derived is ever persisted.
type DashboardResponse struct {
	TotalHours           float64                `json:"total_hours"`
	TotalPrograms        int                    `json:"total_programs"`
	TotalEmployees       int                    `json:"total_employees"`
	AverageCompliance    int                    `json:"average_compliance"`
	DepartmentCompliance []DepartmentCompliance `json:"department_compliance"`
	MonthlyTrend         []MonthlyTrendEntry    `json:"monthly_trend"`
	Leaderboard          LeaderboardResponse    `json:"leaderboard"`
	EvaluationSummary    EvaluationSummary      `json:"evaluation_summary"`
	UpcomingPrograms     []UpcomingProgram      `json:"upcoming_programs"`
	AvailableYears       []int                  `json:"available_years"`
	Year                 int                    `json:"year"`
}

// ========== DEPARTMENT COMPLIANCE ==========

// DepartmentCompliance aggregates training hours per department against
// employeeCount x target hours.
type DepartmentCompliance struct {
	Department        string  `json:"department"`
	EmployeeCount     int     `json:"employee_count"`
	TotalHours        float64 `json:"total_hours"`
	TargetHours       float64 `json:"target_hours"`
	CompliancePercent int     `json:"compliance_percent"`
}

// ========== MONTHLY TREND ==========

// MonthlyTrendEntry is one of the twelve Jan-Dec buckets, keyed on the
// month of the program's end date.
type MonthlyTrendEntry struct {
	Month        string  `json:"month"` // "Jan" .. "Dec"
	TotalHours   float64 `json:"total_hours"`
	ProgramCount int     `json:"program_count"`
}

// ========== LEADERBOARD ==========

// LeaderboardEntry ranks one profile by completed hours in the year window.
type LeaderboardEntry struct {
	Rank              int     `json:"rank"`
	UserID            string  `json:"user_id"`
	Name              string  `json:"name"`
	Department        string  `json:"department"`
	HoursCompleted    float64 `json:"hours_completed"`
	CompliancePercent int     `json:"compliance_percent"`
}

// LeaderboardResponse carries the top entries plus the invoking user's own
// entry when they fall outside the top slice.
type LeaderboardResponse struct {
	Entries          []LeaderboardEntry `json:"entries"`
	CurrentUserEntry *LeaderboardEntry  `json:"current_user_entry,omitempty"`
}

// ========== EVALUATION SUMMARY ==========

// QuestionAverage is the per-question mean of mapped answer scores.
type QuestionAverage struct {
	Question string  `json:"question"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}

// EvaluationSummary averages mapped scores per question across all
// evaluations in the period.
type EvaluationSummary struct {
	Questions      []QuestionAverage `json:"questions"`
	TotalResponses int               `json:"total_responses"`
}

// ========== UPCOMING PROGRAMS ==========

// UpcomingProgram is a program starting within the lookahead window.
type UpcomingProgram struct {
	ProgramID string  `json:"program_id"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	StartAt   string  `json:"start_at"`
	EndAt     string  `json:"end_at"`
	Hours     float64 `json:"hours"`
}
