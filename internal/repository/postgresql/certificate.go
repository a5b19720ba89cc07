package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/trainhub/training-backend-go/internal/domain/certificate"
	"github.com/trainhub/training-backend-go/internal/pkg/database"
)

type certificateRepositoryImpl struct {
	db *database.DB
}

func NewCertificateRepository(db *database.DB) certificate.CertificateRepository {
	return &certificateRepositoryImpl{db: db}
}

const certificateColumns = `id, user_id, program_id, file_path, file_name, content_type, uploaded_at`

func scanCertificate(row pgx.Row) (*certificate.Certificate, error) {
	var c certificate.Certificate
	err := row.Scan(&c.ID, &c.UserID, &c.ProgramID, &c.FilePath, &c.FileName, &c.ContentType, &c.UploadedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *certificateRepositoryImpl) Create(ctx context.Context, c certificate.Certificate) (*certificate.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	query := `
		INSERT INTO certificates (id, user_id, program_id, file_path, file_name, content_type, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING ` + certificateColumns

	created, err := scanCertificate(q.QueryRow(ctx, query, c.ID, c.UserID, c.ProgramID, c.FilePath, c.FileName, c.ContentType))
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}
	return created, nil
}

func (r *certificateRepositoryImpl) GetByID(ctx context.Context, id string) (*certificate.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanCertificate(q.QueryRow(ctx, `SELECT `+certificateColumns+` FROM certificates WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, certificate.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("failed to get certificate by id: %w", err)
	}
	return c, nil
}

func (r *certificateRepositoryImpl) List(ctx context.Context, filter certificate.ListFilter) ([]certificate.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	i := 1

	if filter.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", i))
		args = append(args, filter.UserID)
		i++
	}
	if filter.ProgramID != "" {
		conditions = append(conditions, fmt.Sprintf("program_id = $%d", i))
		args = append(args, filter.ProgramID)
		i++
	}

	query := "SELECT " + certificateColumns + " FROM certificates WHERE " + strings.Join(conditions, " AND ") + " ORDER BY uploaded_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	defer rows.Close()

	var out []certificate.Certificate
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certificate: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read certificates: %w", err)
	}
	return out, nil
}

func (r *certificateRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete certificate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return certificate.ErrCertificateNotFound
	}
	return nil
}
