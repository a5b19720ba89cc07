package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

const assignmentColumns = `id, user_id, program_id, status, attendance_marked_by, attendance_marked_at, created_at, updated_at`

// joinedColumns selects assignments left-joined with programs; dangling
// rows still come back with NULL program fields.
const joinedColumns = `
	a.id, a.user_id, a.program_id, a.status, a.attendance_marked_by, a.attendance_marked_at, a.created_at, a.updated_at,
	p.title, p.category, p.hours, p.start_at, p.end_at`

func scanAssignment(row pgx.Row) (*assignment.Assignment, error) {
	var a assignment.Assignment
	err := row.Scan(&a.ID, &a.UserID, &a.ProgramID, &a.Status, &a.AttendanceMarkedBy, &a.AttendanceMarkedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanJoined(row pgx.Row) (*assignment.WithProgram, error) {
	var w assignment.WithProgram
	err := row.Scan(
		&w.ID, &w.UserID, &w.ProgramID, &w.Assignment.Status, &w.AttendanceMarkedBy, &w.AttendanceMarkedAt, &w.CreatedAt, &w.UpdatedAt,
		&w.ProgramTitle, &w.ProgramCategory, &w.ProgramHours, &w.ProgramStartAt, &w.ProgramEndAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *assignmentRepositoryImpl) Create(ctx context.Context, a assignment.Assignment) (*assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query := `
		INSERT INTO program_assignments (id, user_id, program_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + assignmentColumns

	created, err := scanAssignment(q.QueryRow(ctx, query, a.ID, a.UserID, a.ProgramID, a.Status))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, assignment.ErrAlreadyAssigned
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}
	return created, nil
}

func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string) (*assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + ` FROM program_assignments WHERE id = $1`
	a, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment by id: %w", err)
	}
	return a, nil
}

func (r *assignmentRepositoryImpl) GetByUserAndProgram(ctx context.Context, userID, programID string) (*assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + ` FROM program_assignments WHERE user_id = $1 AND program_id = $2`
	a, err := scanAssignment(q.QueryRow(ctx, query, userID, programID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return a, nil
}

func (r *assignmentRepositoryImpl) List(ctx context.Context, filter assignment.ListFilter) ([]assignment.WithProgram, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	i := 1

	if filter.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("a.user_id = $%d", i))
		args = append(args, filter.UserID)
		i++
	}
	if filter.ProgramID != "" {
		conditions = append(conditions, fmt.Sprintf("a.program_id = $%d", i))
		args = append(args, filter.ProgramID)
		i++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", i))
		args = append(args, filter.Status)
		i++
	}
	if filter.Year > 0 {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM p.end_at) = $%d", i))
		args = append(args, filter.Year)
		i++
	}

	where := strings.Join(conditions, " AND ")
	from := ` FROM program_assignments a LEFT JOIN programs p ON a.program_id = p.id AND p.deleted_at IS NULL WHERE ` + where

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count assignments: %w", err)
	}

	query := "SELECT " + joinedColumns + from + " ORDER BY a.created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", i, i+1)
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.Limit
		}
		args = append(args, filter.Limit, offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var out []assignment.WithProgram
	for rows.Next() {
		w, err := scanJoined(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan assignment: %w", err)
		}
		out = append(out, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read assignments: %w", err)
	}
	return out, total, nil
}

func (r *assignmentRepositoryImpl) UpdateStatus(ctx context.Context, id string, status assignment.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE program_assignments SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update assignment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}
	return nil
}

func (r *assignmentRepositoryImpl) MarkAttendance(ctx context.Context, id string, markedBy string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE program_assignments
		SET status = $2, attendance_marked_by = $3, attendance_marked_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`, id, assignment.StatusAttended, markedBy)
	if err != nil {
		return fmt.Errorf("failed to mark attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}
	return nil
}

func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM program_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}
	return nil
}
