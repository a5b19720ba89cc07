package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/trainhub/training-backend-go/internal/domain/program"
	"github.com/trainhub/training-backend-go/internal/pkg/database"
)

type programRepositoryImpl struct {
	db *database.DB
}

func NewProgramRepository(db *database.DB) program.ProgramRepository {
	return &programRepositoryImpl{db: db}
}

const programColumns = `id, title, category, start_at, end_at, hours, status, created_by, created_at, updated_at, deleted_at`

func scanProgram(row pgx.Row) (*program.Program, error) {
	var p program.Program
	err := row.Scan(&p.ID, &p.Title, &p.Category, &p.StartAt, &p.EndAt, &p.Hours, &p.Status, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *programRepositoryImpl) Create(ctx context.Context, p program.Program) (*program.Program, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query := `
		INSERT INTO programs (id, title, category, start_at, end_at, hours, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + programColumns

	created, err := scanProgram(q.QueryRow(ctx, query, p.ID, p.Title, p.Category, p.StartAt, p.EndAt, p.Hours, p.Status, p.CreatedBy))
	if err != nil {
		return nil, fmt.Errorf("failed to create program: %w", err)
	}
	return created, nil
}

func (r *programRepositoryImpl) GetByID(ctx context.Context, id string) (*program.Program, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + programColumns + ` FROM programs WHERE id = $1 AND deleted_at IS NULL`
	p, err := scanProgram(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, program.ErrProgramNotFound
		}
		return nil, fmt.Errorf("failed to get program by id: %w", err)
	}
	return p, nil
}

func (r *programRepositoryImpl) List(ctx context.Context, filter program.ListFilter) ([]program.Program, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"deleted_at IS NULL"}
	args := []interface{}{}
	i := 1

	if filter.Year > 0 {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM start_at) = $%d", i))
		args = append(args, filter.Year)
		i++
	}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", i))
		args = append(args, filter.Category)
		i++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", i))
		args = append(args, filter.Status)
		i++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM programs WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count programs: %w", err)
	}

	query := "SELECT " + programColumns + " FROM programs WHERE " + where + " ORDER BY start_at DESC"
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
		return nil, 0, fmt.Errorf("failed to list programs: %w", err)
	}
	defer rows.Close()

	var out []program.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan program: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read programs: %w", err)
	}
	return out, total, nil
}

func (r *programRepositoryImpl) Update(ctx context.Context, p program.Program) (*program.Program, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE programs
		SET title = $2, category = $3, start_at = $4, end_at = $5, hours = $6, status = $7, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + programColumns

	updated, err := scanProgram(q.QueryRow(ctx, query, p.ID, p.Title, p.Category, p.StartAt, p.EndAt, p.Hours, p.Status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, program.ErrProgramNotFound
		}
		return nil, fmt.Errorf("failed to update program: %w", err)
	}
	return updated, nil
}

func (r *programRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE programs SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to delete program: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return program.ErrProgramNotFound
	}
	return nil
}

func (r *programRepositoryImpl) MarkOngoing(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE programs SET status = 'ongoing', updated_at = NOW()
		WHERE status = 'scheduled' AND start_at <= $1 AND end_at > $1 AND deleted_at IS NULL
	`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to mark programs ongoing: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *programRepositoryImpl) MarkCompleted(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE programs SET status = 'completed', updated_at = NOW()
		WHERE status IN ('scheduled', 'ongoing') AND end_at <= $1 AND deleted_at IS NULL
	`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to mark programs completed: %w", err)
	}
	return tag.RowsAffected(), nil
}
