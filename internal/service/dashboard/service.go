package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/domain/dashboard"
	"github.com/trainhub/training-backend-go/internal/domain/evaluation"
	"github.com/trainhub/training-backend-go/internal/domain/profile"
	"github.com/trainhub/training-backend-go/internal/domain/program"
	"github.com/trainhub/training-backend-go/internal/service/compliance"
)

const (
	upcomingWindow = 7 * 24 * time.Hour
	upcomingLimit  = 5
)

type DashboardServiceImpl struct {
	repo dashboard.DashboardRepository
	calc *compliance.Calculator
}

func NewDashboardService(repo dashboard.DashboardRepository, calc *compliance.Calculator) dashboard.DashboardService {
	return &DashboardServiceImpl{
		repo: repo,
		calc: calc,
	}
}

// resolveYear defaults a zero or negative year to the current one.
func resolveYear(year int) int {
	if year <= 0 {
		return time.Now().Year()
	}
	return year
}

// GetDashboard recomputes the full snapshot from raw rows on every call.
// The fetches fan out in parallel; any failure aborts the aggregation
// with no partial result. The reductions themselves are pure, so two
// calls over the same rows produce identical snapshots.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, userID string, year int) (*dashboard.DashboardResponse, error) {
	year = resolveYear(year)

	var (
		profiles []profile.Profile
		rows     []assignment.WithProgram
		evals    []evaluation.Evaluation
		upcoming []program.Program
		years    []int
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		profiles, err = s.repo.FetchProfiles(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.repo.FetchAssignmentRows(gCtx, year)
		return err
	})
	g.Go(func() error {
		var err error
		evals, err = s.repo.FetchEvaluations(gCtx, year)
		return err
	})
	g.Go(func() error {
		var err error
		upcoming, err = s.repo.FetchUpcomingPrograms(gCtx, time.Now(), upcomingWindow, upcomingLimit)
		return err
	})
	g.Go(func() error {
		var err error
		years, err = s.repo.FetchProgramYears(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	inYear := compliance.FilterYear(rows, year)
	totalHours := compliance.SumAllAssignedHours(inYear)
	departments := s.calc.DepartmentCompliance(profiles, inYear)
	leaderboard := s.calc.Leaderboard(profiles, inYear, userID)

	avgCompliance := 0
	if len(profiles) > 0 {
		hoursByUser := make(map[string]float64, len(profiles))
		for _, row := range inYear {
			hoursByUser[row.UserID] += row.Hours()
		}
		var sum int
		for _, p := range profiles {
			sum += s.calc.Compliance(hoursByUser[p.ID])
		}
		avgCompliance = sum / len(profiles)
	}

	programIDs := make(map[string]struct{})
	for _, row := range inYear {
		programIDs[row.ProgramID] = struct{}{}
	}

	return &dashboard.DashboardResponse{
		TotalHours:           totalHours,
		TotalPrograms:        len(programIDs),
		TotalEmployees:       len(profiles),
		AverageCompliance:    avgCompliance,
		DepartmentCompliance: departments,
		MonthlyTrend:         compliance.MonthlyTrend(inYear),
		Leaderboard:          leaderboard,
		EvaluationSummary:    compliance.SummarizeEvaluations(evals),
		UpcomingPrograms:     toUpcoming(upcoming),
		AvailableYears:       withCurrentYear(years),
		Year:                 year,
	}, nil
}

// GetDepartmentCompliance recomputes the per-department table alone.
func (s *DashboardServiceImpl) GetDepartmentCompliance(ctx context.Context, year int) ([]dashboard.DepartmentCompliance, error) {
	year = resolveYear(year)

	profiles, err := s.repo.FetchProfiles(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.FetchAssignmentRows(ctx, year)
	if err != nil {
		return nil, err
	}

	return s.calc.DepartmentCompliance(profiles, compliance.FilterYear(rows, year)), nil
}

// GetMonthlyTrend recomputes the 12-bucket trend alone.
func (s *DashboardServiceImpl) GetMonthlyTrend(ctx context.Context, year int) ([]dashboard.MonthlyTrendEntry, error) {
	year = resolveYear(year)

	rows, err := s.repo.FetchAssignmentRows(ctx, year)
	if err != nil {
		return nil, err
	}

	return compliance.MonthlyTrend(compliance.FilterYear(rows, year)), nil
}

// GetLeaderboard recomputes the ranked list alone.
func (s *DashboardServiceImpl) GetLeaderboard(ctx context.Context, userID string, year int) (*dashboard.LeaderboardResponse, error) {
	year = resolveYear(year)

	profiles, err := s.repo.FetchProfiles(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.FetchAssignmentRows(ctx, year)
	if err != nil {
		return nil, err
	}

	board := s.calc.Leaderboard(profiles, compliance.FilterYear(rows, year), userID)
	return &board, nil
}

// GetEvaluationSummary recomputes the per-question averages alone.
func (s *DashboardServiceImpl) GetEvaluationSummary(ctx context.Context, year int) (*dashboard.EvaluationSummary, error) {
	year = resolveYear(year)

	evals, err := s.repo.FetchEvaluations(ctx, year)
	if err != nil {
		return nil, err
	}

	summary := compliance.SummarizeEvaluations(evals)
	return &summary, nil
}

func toUpcoming(programs []program.Program) []dashboard.UpcomingProgram {
	out := make([]dashboard.UpcomingProgram, 0, len(programs))
	for _, p := range programs {
		out = append(out, dashboard.UpcomingProgram{
			ProgramID: p.ID,
			Title:     p.Title,
			Category:  string(p.Category),
			StartAt:   p.StartAt.Format(time.RFC3339),
			EndAt:     p.EndAt.Format(time.RFC3339),
			Hours:     p.Hours,
		})
	}
	return out
}

// withCurrentYear guarantees the current calendar year appears even when
// no program exists in it yet.
func withCurrentYear(years []int) []int {
	current := time.Now().Year()
	for _, y := range years {
		if y == current {
			return years
		}
	}
	out := make([]int, 0, len(years)+1)
	inserted := false
	for _, y := range years {
		if !inserted && current > y {
			out = append(out, current)
			inserted = true
		}
		out = append(out, y)
	}
	if !inserted {
		out = append(out, current)
	}
	return out
}
