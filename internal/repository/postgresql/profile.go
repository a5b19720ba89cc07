package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/trainhub/training-backend-go/internal/domain/profile"
	"github.com/trainhub/training-backend-go/internal/pkg/database"
)

type profileRepositoryImpl struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) profile.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

const profileColumns = `id, name, email, department, role, status, created_at, updated_at, deleted_at`

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Department, &p.Role, &p.Status, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepositoryImpl) Create(ctx context.Context, p profile.Profile) (*profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query := `
		INSERT INTO profiles (id, name, email, department, role, status, created_at, updated_at)
		VALUES ($1, $2, lower($3), $4, $5, $6, NOW(), NOW())
		RETURNING ` + profileColumns

	created, err := scanProfile(q.QueryRow(ctx, query, p.ID, p.Name, p.Email, p.Department, p.Role, p.Status))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, profile.ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return created, nil
}

func (r *profileRepositoryImpl) GetByID(ctx context.Context, id string) (*profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1 AND deleted_at IS NULL`
	p, err := scanProfile(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by id: %w", err)
	}
	return p, nil
}

func (r *profileRepositoryImpl) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = lower($1) AND deleted_at IS NULL`
	p, err := scanProfile(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}
	return p, nil
}

func (r *profileRepositoryImpl) List(ctx context.Context, filter profile.ListFilter) ([]profile.Profile, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"deleted_at IS NULL"}
	args := []interface{}{}
	i := 1

	if filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("department = $%d", i))
		args = append(args, filter.Department)
		i++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", i))
		args = append(args, filter.Status)
		i++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", i, i))
		args = append(args, "%"+filter.Search+"%")
		i++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM profiles WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	query := "SELECT " + profileColumns + " FROM profiles WHERE " + where + " ORDER BY name ASC"
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
		return nil, 0, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var out []profile.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan profile: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read profiles: %w", err)
	}
	return out, total, nil
}

func (r *profileRepositoryImpl) Update(ctx context.Context, p profile.Profile) (*profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE profiles
		SET name = $2, email = lower($3), department = $4, role = $5, status = $6, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + profileColumns

	updated, err := scanProfile(q.QueryRow(ctx, query, p.ID, p.Name, p.Email, p.Department, p.Role, p.Status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		if isUniqueViolation(err) {
			return nil, profile.ErrEmailExists
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated, nil
}

func (r *profileRepositoryImpl) SetStatus(ctx context.Context, id string, status profile.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE profiles SET status = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id, status)
	if err != nil {
		return fmt.Errorf("failed to set profile status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE profiles SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrProfileNotFound
	}
	return nil
}
