package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/trainhub/training-backend-go/internal/domain/evaluation"
	"github.com/trainhub/training-backend-go/internal/pkg/database"
)

type evaluationRepositoryImpl struct {
	db *database.DB
}

func NewEvaluationRepository(db *database.DB) evaluation.EvaluationRepository {
	return &evaluationRepositoryImpl{db: db}
}

const evaluationColumns = `id, user_id, program_id, answers, comment, submitted_at`

func scanEvaluation(row pgx.Row) (*evaluation.Evaluation, error) {
	var e evaluation.Evaluation
	err := row.Scan(&e.ID, &e.UserID, &e.ProgramID, &e.Answers, &e.Comment, &e.SubmittedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *evaluationRepositoryImpl) Create(ctx context.Context, e evaluation.Evaluation) (*evaluation.Evaluation, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	query := `
		INSERT INTO evaluations (id, user_id, program_id, answers, comment, submitted_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + evaluationColumns

	created, err := scanEvaluation(q.QueryRow(ctx, query, e.ID, e.UserID, e.ProgramID, e.Answers, e.Comment))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, evaluation.ErrEvaluationExists
		}
		return nil, fmt.Errorf("failed to create evaluation: %w", err)
	}
	return created, nil
}

func (r *evaluationRepositoryImpl) GetByID(ctx context.Context, id string) (*evaluation.Evaluation, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEvaluation(q.QueryRow(ctx, `SELECT `+evaluationColumns+` FROM evaluations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, evaluation.ErrEvaluationNotFound
		}
		return nil, fmt.Errorf("failed to get evaluation by id: %w", err)
	}
	return e, nil
}

func (r *evaluationRepositoryImpl) Exists(ctx context.Context, userID, programID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM evaluations WHERE user_id = $1 AND program_id = $2)`, userID, programID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check evaluation existence: %w", err)
	}
	return exists, nil
}

func (r *evaluationRepositoryImpl) List(ctx context.Context, filter evaluation.ListFilter) ([]evaluation.Evaluation, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	i := 1

	if filter.ProgramID != "" {
		conditions = append(conditions, fmt.Sprintf("program_id = $%d", i))
		args = append(args, filter.ProgramID)
		i++
	}
	if filter.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", i))
		args = append(args, filter.UserID)
		i++
	}
	if filter.Year > 0 {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM submitted_at) = $%d", i))
		args = append(args, filter.Year)
		i++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM evaluations WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count evaluations: %w", err)
	}

	query := "SELECT " + evaluationColumns + " FROM evaluations WHERE " + where + " ORDER BY submitted_at DESC"
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
		return nil, 0, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	var out []evaluation.Evaluation
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read evaluations: %w", err)
	}
	return out, total, nil
}
