package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/domain/evaluation"
	"github.com/trainhub/training-backend-go/internal/domain/profile"
	"github.com/trainhub/training-backend-go/internal/domain/program"
	"github.com/trainhub/training-backend-go/internal/service/compliance"
)

type fakeDashboardRepo struct {
	profiles []profile.Profile
	rows     []assignment.WithProgram
	evals    []evaluation.Evaluation
	upcoming []program.Program
	years    []int

	failOn string
}

func (f *fakeDashboardRepo) FetchProfiles(ctx context.Context) ([]profile.Profile, error) {
	if f.failOn == "profiles" {
		return nil, errors.New("profiles query failed")
	}
	return f.profiles, nil
}

func (f *fakeDashboardRepo) FetchAssignmentRows(ctx context.Context, year int) ([]assignment.WithProgram, error) {
	if f.failOn == "rows" {
		return nil, errors.New("rows query failed")
	}
	return f.rows, nil
}

func (f *fakeDashboardRepo) FetchEvaluations(ctx context.Context, year int) ([]evaluation.Evaluation, error) {
	if f.failOn == "evals" {
		return nil, errors.New("evals query failed")
	}
	return f.evals, nil
}

func (f *fakeDashboardRepo) FetchUpcomingPrograms(ctx context.Context, from time.Time, window time.Duration, limit int) ([]program.Program, error) {
	if f.failOn == "upcoming" {
		return nil, errors.New("upcoming query failed")
	}
	return f.upcoming, nil
}

func (f *fakeDashboardRepo) FetchProgramYears(ctx context.Context) ([]int, error) {
	if f.failOn == "years" {
		return nil, errors.New("years query failed")
	}
	return f.years, nil
}

func strPtr(s string) *string { return &s }

func rowFor(userID, programID string, status assignment.Status, hours float64, endAt time.Time) assignment.WithProgram {
	cat := program.CategoryTechnical
	return assignment.WithProgram{
		Assignment: assignment.Assignment{
			ID:        userID + "-" + programID,
			UserID:    userID,
			ProgramID: programID,
			Status:    status,
		},
		ProgramTitle:    strPtr("Program " + programID),
		ProgramCategory: &cat,
		ProgramHours:    &hours,
		ProgramEndAt:    &endAt,
	}
}

func TestGetDashboardComposesAllSections(t *testing.T) {
	year := time.Now().Year()
	endAt := time.Date(year, time.March, 10, 0, 0, 0, 0, time.UTC)

	eng := "Engineering"
	repo := &fakeDashboardRepo{
		profiles: []profile.Profile{
			{ID: "u1", Name: "Alice", Department: &eng},
			{ID: "u2", Name: "Bob"},
		},
		rows: []assignment.WithProgram{
			rowFor("u1", "p1", assignment.StatusAttended, 24, endAt),
			rowFor("u2", "p1", assignment.StatusAssigned, 24, endAt),
			rowFor("u1", "p2", assignment.StatusAttended, 16, endAt),
		},
		evals: []evaluation.Evaluation{
			{ID: "e1", UserID: "u1", ProgramID: "p1", Answers: map[string]string{"q1": "BAGUS"}},
		},
		years: []int{year},
	}

	svc := NewDashboardService(repo, compliance.NewCalculator(40, 10))
	resp, err := svc.GetDashboard(context.Background(), "u1", 0)
	require.NoError(t, err)

	assert.Equal(t, year, resp.Year)
	assert.Equal(t, 64.0, resp.TotalHours)
	assert.Equal(t, 2, resp.TotalPrograms)
	assert.Equal(t, 2, resp.TotalEmployees)
	// u1: 40h -> 100%, u2: 24h -> 60%; average floors to 80.
	assert.Equal(t, 80, resp.AverageCompliance)
	assert.Len(t, resp.MonthlyTrend, 12)
	assert.Equal(t, "Mar", resp.MonthlyTrend[2].Month)
	assert.Equal(t, 64.0, resp.MonthlyTrend[2].TotalHours)
	assert.Equal(t, 2, resp.MonthlyTrend[2].ProgramCount)
	assert.Equal(t, 1, resp.EvaluationSummary.TotalResponses)
	require.Len(t, resp.Leaderboard.Entries, 2)
	assert.Equal(t, "u1", resp.Leaderboard.Entries[0].UserID)
}

func TestGetDashboardFailsWhole(t *testing.T) {
	repo := &fakeDashboardRepo{failOn: "evals"}
	svc := NewDashboardService(repo, compliance.NewCalculator(40, 10))

	resp, err := svc.GetDashboard(context.Background(), "u1", 2025)
	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestAvailableYearsAlwaysIncludesCurrent(t *testing.T) {
	current := time.Now().Year()

	assert.Equal(t, []int{current}, withCurrentYear(nil))
	assert.Equal(t, []int{current, current - 1}, withCurrentYear([]int{current - 1}))
	assert.Equal(t, []int{current, current - 2}, withCurrentYear([]int{current, current - 2}))
}

func TestGetLeaderboardCurrentUserOutsideTop(t *testing.T) {
	year := time.Now().Year()
	endAt := time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)

	profiles := make([]profile.Profile, 0, 12)
	rows := make([]assignment.WithProgram, 0, 12)
	for i := 0; i < 12; i++ {
		id := string(rune('a' + i))
		profiles = append(profiles, profile.Profile{ID: id, Name: id})
		rows = append(rows, rowFor(id, "p1", assignment.StatusAttended, float64(48-i), endAt))
	}
	repo := &fakeDashboardRepo{profiles: profiles, rows: rows}

	svc := NewDashboardService(repo, compliance.NewCalculator(40, 10))
	board, err := svc.GetLeaderboard(context.Background(), "l", year)
	require.NoError(t, err)

	assert.Len(t, board.Entries, 10)
	require.NotNil(t, board.CurrentUserEntry)
	assert.Equal(t, "l", board.CurrentUserEntry.UserID)
	assert.Equal(t, 12, board.CurrentUserEntry.Rank)
}
