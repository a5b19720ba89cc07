package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/domain/dashboard"
	"github.com/trainhub/training-backend-go/internal/domain/evaluation"
	"github.com/trainhub/training-backend-go/internal/domain/profile"
	"github.com/trainhub/training-backend-go/internal/domain/program"
	"github.com/trainhub/training-backend-go/internal/pkg/database"
)

// dashboardRepositoryImpl fetches raw record sets only; every join and
// reduction happens in the service layer.
type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) FetchProfiles(ctx context.Context) ([]profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE deleted_at IS NULL
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}
	defer rows.Close()

	var out []profile.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}
	return out, nil
}

func (r *dashboardRepositoryImpl) FetchAssignmentRows(ctx context.Context, year int) ([]assignment.WithProgram, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+joinedColumns+`
		FROM program_assignments a
		LEFT JOIN programs p ON a.program_id = p.id AND p.deleted_at IS NULL
		WHERE p.id IS NULL OR EXTRACT(YEAR FROM p.end_at) = $1
		ORDER BY a.created_at ASC
	`, year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignment rows: %w", err)
	}
	defer rows.Close()

	var out []assignment.WithProgram
	for rows.Next() {
		w, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		out = append(out, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assignment rows: %w", err)
	}
	return out, nil
}

func (r *dashboardRepositoryImpl) FetchEvaluations(ctx context.Context, year int) ([]evaluation.Evaluation, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+evaluationColumns+`
		FROM evaluations
		WHERE EXTRACT(YEAR FROM submitted_at) = $1
		ORDER BY submitted_at ASC
	`, year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch evaluations: %w", err)
	}
	defer rows.Close()

	var out []evaluation.Evaluation
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read evaluations: %w", err)
	}
	return out, nil
}

func (r *dashboardRepositoryImpl) FetchUpcomingPrograms(ctx context.Context, from time.Time, window time.Duration, limit int) ([]program.Program, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+programColumns+`
		FROM programs
		WHERE start_at > $1 AND start_at <= $2 AND deleted_at IS NULL AND status <> 'cancelled'
		ORDER BY start_at ASC
		LIMIT $3
	`, from, from.Add(window), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming programs: %w", err)
	}
	defer rows.Close()

	var out []program.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan program: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read upcoming programs: %w", err)
	}
	return out, nil
}

func (r *dashboardRepositoryImpl) FetchProgramYears(ctx context.Context) ([]int, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT DISTINCT EXTRACT(YEAR FROM start_at)::int AS year
		FROM programs
		WHERE deleted_at IS NULL
		ORDER BY year DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch program years: %w", err)
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("failed to scan program year: %w", err)
		}
		out = append(out, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read program years: %w", err)
	}
	return out, nil
}
