package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/domain/employee_dashboard"
	"github.com/trainhub/training-backend-go/internal/domain/program"
	"github.com/trainhub/training-backend-go/internal/pkg/database"
)

type employeeDashboardRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeDashboardRepository(db *database.DB) employee_dashboard.EmployeeDashboardRepository {
	return &employeeDashboardRepositoryImpl{db: db}
}

func (r *employeeDashboardRepositoryImpl) FetchUserAssignmentRows(ctx context.Context, userID string, year int) ([]assignment.WithProgram, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+joinedColumns+`
		FROM program_assignments a
		LEFT JOIN programs p ON a.program_id = p.id AND p.deleted_at IS NULL
		WHERE a.user_id = $1 AND (p.id IS NULL OR EXTRACT(YEAR FROM p.end_at) = $2)
		ORDER BY a.created_at ASC
	`, userID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user assignment rows: %w", err)
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

// FetchOverdueCandidates caps the candidate list before the evaluation
// exclusion is applied, so the final overdue list can run shorter than
// the cap even when more overdue items exist.
func (r *employeeDashboardRepositoryImpl) FetchOverdueCandidates(ctx context.Context, userID string, endedBefore time.Time, limit int) ([]assignment.WithProgram, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+joinedColumns+`
		FROM program_assignments a
		JOIN programs p ON a.program_id = p.id AND p.deleted_at IS NULL
		WHERE a.user_id = $1 AND a.status = $2 AND p.end_at < $3
		ORDER BY p.end_at DESC
		LIMIT $4
	`, userID, assignment.StatusAttended, endedBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overdue candidates: %w", err)
	}
	defer rows.Close()

	var out []assignment.WithProgram
	for rows.Next() {
		w, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overdue candidate: %w", err)
		}
		out = append(out, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read overdue candidates: %w", err)
	}
	return out, nil
}

// FilterEvaluated resolves evaluation existence for all keys in a single
// batched query instead of one lookup per candidate.
func (r *employeeDashboardRepositoryImpl) FilterEvaluated(ctx context.Context, keys []employee_dashboard.EvaluationKey) (map[employee_dashboard.EvaluationKey]bool, error) {
	out := make(map[employee_dashboard.EvaluationKey]bool, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	q := GetQuerier(ctx, r.db)

	userIDs := make([]string, len(keys))
	programIDs := make([]string, len(keys))
	for i, key := range keys {
		userIDs[i] = key.UserID
		programIDs[i] = key.ProgramID
	}

	rows, err := q.Query(ctx, `
		SELECT e.user_id, e.program_id
		FROM evaluations e
		JOIN unnest($1::text[], $2::text[]) AS k(user_id, program_id)
			ON e.user_id = k.user_id AND e.program_id = k.program_id
	`, userIDs, programIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to filter evaluated keys: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key employee_dashboard.EvaluationKey
		if err := rows.Scan(&key.UserID, &key.ProgramID); err != nil {
			return nil, fmt.Errorf("failed to scan evaluated key: %w", err)
		}
		out[key] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read evaluated keys: %w", err)
	}
	return out, nil
}

func (r *employeeDashboardRepositoryImpl) FetchUpcomingPrograms(ctx context.Context, userID string, from time.Time, window time.Duration, limit int) ([]program.Program, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+prefixedProgramColumns+`
		FROM programs p
		JOIN program_assignments a ON a.program_id = p.id
		WHERE a.user_id = $1 AND p.start_at > $2 AND p.start_at <= $3
			AND p.deleted_at IS NULL AND p.status <> 'cancelled'
			AND a.status NOT IN ('Cancelled', 'No-Show')
		ORDER BY p.start_at ASC
		LIMIT $4
	`, userID, from, from.Add(window), limit)
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

const prefixedProgramColumns = `p.id, p.title, p.category, p.start_at, p.end_at, p.hours, p.status, p.created_by, p.created_at, p.updated_at, p.deleted_at`
