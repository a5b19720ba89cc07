package employee_dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/domain/employee_dashboard"
	"github.com/trainhub/training-backend-go/internal/domain/evaluation"
	"github.com/trainhub/training-backend-go/internal/domain/profile"
	"github.com/trainhub/training-backend-go/internal/domain/program"
	"github.com/trainhub/training-backend-go/internal/service/compliance"
)

type fakeEmployeeRepo struct {
	rows       []assignment.WithProgram
	candidates []assignment.WithProgram
	evaluated  map[employee_dashboard.EvaluationKey]bool
	upcoming   []program.Program

	candidateLimit int
}

func (f *fakeEmployeeRepo) FetchUserAssignmentRows(ctx context.Context, userID string, year int) ([]assignment.WithProgram, error) {
	return f.rows, nil
}

func (f *fakeEmployeeRepo) FetchOverdueCandidates(ctx context.Context, userID string, endedBefore time.Time, limit int) ([]assignment.WithProgram, error) {
	f.candidateLimit = limit
	if len(f.candidates) > limit {
		return f.candidates[:limit], nil
	}
	return f.candidates, nil
}

func (f *fakeEmployeeRepo) FilterEvaluated(ctx context.Context, keys []employee_dashboard.EvaluationKey) (map[employee_dashboard.EvaluationKey]bool, error) {
	out := make(map[employee_dashboard.EvaluationKey]bool)
	for _, k := range keys {
		if f.evaluated[k] {
			out[k] = true
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) FetchUpcomingPrograms(ctx context.Context, userID string, from time.Time, window time.Duration, limit int) ([]program.Program, error) {
	return f.upcoming, nil
}

type fakeAdminRepo struct {
	profiles []profile.Profile
	rows     []assignment.WithProgram
}

func (f *fakeAdminRepo) FetchProfiles(ctx context.Context) ([]profile.Profile, error) {
	return f.profiles, nil
}

func (f *fakeAdminRepo) FetchAssignmentRows(ctx context.Context, year int) ([]assignment.WithProgram, error) {
	return f.rows, nil
}

func (f *fakeAdminRepo) FetchEvaluations(ctx context.Context, year int) ([]evaluation.Evaluation, error) {
	return nil, nil
}

func (f *fakeAdminRepo) FetchUpcomingPrograms(ctx context.Context, from time.Time, window time.Duration, limit int) ([]program.Program, error) {
	return nil, nil
}

func (f *fakeAdminRepo) FetchProgramYears(ctx context.Context) ([]int, error) {
	return nil, nil
}

func userRow(id string, status assignment.Status, category program.Category, hours float64, endAt time.Time) assignment.WithProgram {
	title := "Program " + id
	return assignment.WithProgram{
		Assignment: assignment.Assignment{
			ID:        "a-" + id,
			UserID:    "u1",
			ProgramID: id,
			Status:    status,
		},
		ProgramTitle:    &title,
		ProgramCategory: &category,
		ProgramHours:    &hours,
		ProgramEndAt:    &endAt,
	}
}

func newTestService(repo *fakeEmployeeRepo, admin *fakeAdminRepo) employee_dashboard.EmployeeDashboardService {
	return NewEmployeeDashboardService(repo, admin, compliance.NewCalculator(40, 10))
}

func TestGetDashboardStrictHours(t *testing.T) {
	year := time.Now().Year()
	endAt := time.Date(year, time.May, 5, 0, 0, 0, 0, time.UTC)

	repo := &fakeEmployeeRepo{
		rows: []assignment.WithProgram{
			userRow("p1", assignment.StatusAttended, program.CategoryTechnical, 8, endAt),
			userRow("p2", assignment.StatusAssigned, program.CategoryTechnical, 16, endAt),
			userRow("p3", assignment.StatusNoShow, program.CategoryLeadership, 4, endAt),
		},
	}
	admin := &fakeAdminRepo{
		profiles: []profile.Profile{{ID: "u1", Name: "Alice"}},
		rows:     repo.rows,
	}

	svc := newTestService(repo, admin)
	resp, err := svc.GetDashboard(context.Background(), "u1", 0)
	require.NoError(t, err)

	// Only the attended 8h count toward the stats.
	assert.Equal(t, 8.0, resp.Stats.AttendedHours)
	assert.Equal(t, 20, resp.Stats.CompliancePercent)
	assert.Equal(t, 40.0, resp.Stats.TargetHours)
	assert.Equal(t, 3, resp.Stats.AssignedCount)
	assert.Equal(t, 1, resp.Stats.AttendedCount)

	require.Len(t, resp.HoursByCategory, 5)
	assert.Equal(t, "Technical", resp.HoursByCategory[0].Category)
	assert.Equal(t, 8.0, resp.HoursByCategory[0].Hours)
	assert.Equal(t, 0.0, resp.HoursByCategory[1].Hours)

	require.NotNil(t, resp.MyRank)
	assert.Equal(t, 1, resp.MyRank.Rank)
}

func TestOverdueCapAppliesBeforeExclusion(t *testing.T) {
	now := time.Now()

	// Twelve candidates, newest first; the repo caps at ten before the
	// evaluation-existence filter runs.
	candidates := make([]assignment.WithProgram, 0, 12)
	for i := 0; i < 12; i++ {
		endAt := now.Add(-time.Duration(4+i) * 24 * time.Hour)
		candidates = append(candidates, userRow(
			"p"+string(rune('a'+i)), assignment.StatusAttended, program.CategoryTechnical, 8, endAt,
		))
	}

	repo := &fakeEmployeeRepo{
		candidates: candidates,
		evaluated: map[employee_dashboard.EvaluationKey]bool{
			{UserID: "u1", ProgramID: "pa"}: true,
			{UserID: "u1", ProgramID: "pb"}: true,
		},
	}

	svc := newTestService(repo, &fakeAdminRepo{})
	overdue, err := svc.GetOverdueEvaluations(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 10, repo.candidateLimit)
	// Two of the capped ten are already evaluated, so eight remain even
	// though two more candidates exist past the cap.
	assert.Len(t, overdue, 8)
	assert.Equal(t, "pc", overdue[0].ProgramID)
	assert.Equal(t, 6, overdue[0].DaysOverdue)
}

func TestOverdueDaysComputedFromEnd(t *testing.T) {
	now := time.Now()
	repo := &fakeEmployeeRepo{
		candidates: []assignment.WithProgram{
			userRow("p1", assignment.StatusAttended, program.CategoryTechnical, 8, now.Add(-5*24*time.Hour)),
		},
	}

	svc := newTestService(repo, &fakeAdminRepo{})
	overdue, err := svc.GetOverdueEvaluations(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, overdue, 1)
	assert.Equal(t, 5, overdue[0].DaysOverdue)
	assert.Equal(t, 8.0, overdue[0].Hours)
}

func TestOverdueEmptyWhenNoCandidates(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{}, &fakeAdminRepo{})

	overdue, err := svc.GetOverdueEvaluations(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, overdue)
}
