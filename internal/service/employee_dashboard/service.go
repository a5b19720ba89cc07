package employee_dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/domain/dashboard"
	"github.com/trainhub/training-backend-go/internal/domain/employee_dashboard"
	"github.com/trainhub/training-backend-go/internal/domain/program"
	"github.com/trainhub/training-backend-go/internal/service/compliance"
)

const (
	upcomingWindow = 7 * 24 * time.Hour
	upcomingLimit  = 5

	// overdueGrace is how long after a program ends an evaluation may
	// still be submitted before the assignment counts as overdue.
	overdueGrace = 3 * 24 * time.Hour
	overdueLimit = 10
)

type EmployeeDashboardServiceImpl struct {
	repo          employee_dashboard.EmployeeDashboardRepository
	dashboardRepo dashboard.DashboardRepository
	calc          *compliance.Calculator
}

func NewEmployeeDashboardService(
	repo employee_dashboard.EmployeeDashboardRepository,
	dashboardRepo dashboard.DashboardRepository,
	calc *compliance.Calculator,
) employee_dashboard.EmployeeDashboardService {
	return &EmployeeDashboardServiceImpl{
		repo:          repo,
		dashboardRepo: dashboardRepo,
		calc:          calc,
	}
}

// GetDashboard composes the per-user snapshot. Hour totals here are
// strict: only Attended assignments count toward the stat cards and the
// category breakdown.
func (s *EmployeeDashboardServiceImpl) GetDashboard(ctx context.Context, userID string, year int) (*employee_dashboard.EmployeeDashboardResponse, error) {
	if year <= 0 {
		year = time.Now().Year()
	}

	var (
		rows     []assignment.WithProgram
		upcoming []program.Program
		overdue  []employee_dashboard.OverdueEvaluation
		myRank   *dashboard.LeaderboardEntry
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		rows, err = s.repo.FetchUserAssignmentRows(gCtx, userID, year)
		return err
	})
	g.Go(func() error {
		var err error
		upcoming, err = s.repo.FetchUpcomingPrograms(gCtx, userID, time.Now(), upcomingWindow, upcomingLimit)
		return err
	})
	g.Go(func() error {
		var err error
		overdue, err = s.GetOverdueEvaluations(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		myRank, err = s.rank(gCtx, userID, year)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	inYear := compliance.FilterYear(rows, year)
	attended := compliance.SumAttendedHours(inYear)

	attendedCount := 0
	for _, row := range inYear {
		if row.Status == assignment.StatusAttended {
			attendedCount++
		}
	}

	return &employee_dashboard.EmployeeDashboardResponse{
		Stats: employee_dashboard.StatsResponse{
			AttendedHours:     attended,
			CompliancePercent: s.calc.Compliance(attended),
			TargetHours:       s.calc.TargetHours(),
			AssignedCount:     len(inYear),
			AttendedCount:     attendedCount,
		},
		HoursByCategory:    categoryBreakdown(inYear),
		UpcomingPrograms:   toUpcoming(upcoming),
		OverdueEvaluations: overdue,
		MyRank:             myRank,
		Year:               year,
	}, nil
}

// GetOverdueEvaluations lists the user's attended assignments whose
// program ended past the grace period without an evaluation. The
// candidate cap applies before the evaluation-existence exclusion, so the
// result may be shorter than the cap even when older candidates remain.
func (s *EmployeeDashboardServiceImpl) GetOverdueEvaluations(ctx context.Context, userID string) ([]employee_dashboard.OverdueEvaluation, error) {
	now := time.Now()
	cutoff := now.Add(-overdueGrace)

	candidates, err := s.repo.FetchOverdueCandidates(ctx, userID, cutoff, overdueLimit)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []employee_dashboard.OverdueEvaluation{}, nil
	}

	keys := make([]employee_dashboard.EvaluationKey, 0, len(candidates))
	for _, c := range candidates {
		keys = append(keys, employee_dashboard.EvaluationKey{UserID: c.UserID, ProgramID: c.ProgramID})
	}
	evaluated, err := s.repo.FilterEvaluated(ctx, keys)
	if err != nil {
		return nil, err
	}

	out := make([]employee_dashboard.OverdueEvaluation, 0, len(candidates))
	for _, c := range candidates {
		if evaluated[employee_dashboard.EvaluationKey{UserID: c.UserID, ProgramID: c.ProgramID}] {
			continue
		}
		if c.ProgramEndAt == nil {
			continue
		}
		title := ""
		if c.ProgramTitle != nil {
			title = *c.ProgramTitle
		}
		out = append(out, employee_dashboard.OverdueEvaluation{
			AssignmentID: c.ID,
			ProgramID:    c.ProgramID,
			Title:        title,
			EndedAt:      c.ProgramEndAt.Format(time.RFC3339),
			DaysOverdue:  int(now.Sub(*c.ProgramEndAt).Hours() / 24),
			Hours:        c.Hours(),
		})
	}
	return out, nil
}

// rank resolves the user's own leaderboard entry from the full ranked
// list, regardless of whether they make the top slice.
func (s *EmployeeDashboardServiceImpl) rank(ctx context.Context, userID string, year int) (*dashboard.LeaderboardEntry, error) {
	profiles, err := s.dashboardRepo.FetchProfiles(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.dashboardRepo.FetchAssignmentRows(ctx, year)
	if err != nil {
		return nil, err
	}

	board := s.calc.Leaderboard(profiles, compliance.FilterYear(rows, year), userID)
	if board.CurrentUserEntry != nil {
		return board.CurrentUserEntry, nil
	}
	for _, e := range board.Entries {
		if e.UserID == userID {
			entry := e
			return &entry, nil
		}
	}
	return nil, nil
}

// categoryBreakdown reduces attended hours into the fixed category set,
// every bucket present even when zero.
func categoryBreakdown(rows []assignment.WithProgram) []employee_dashboard.CategoryHours {
	byCategory := compliance.HoursByCategory(rows)

	out := make([]employee_dashboard.CategoryHours, 0, len(program.Categories))
	for _, c := range program.Categories {
		out = append(out, employee_dashboard.CategoryHours{
			Category: string(c),
			Hours:    byCategory[c],
		})
	}
	return out
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
