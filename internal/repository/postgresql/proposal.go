package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/trainhub/training-backend-go/internal/domain/proposal"
	"github.com/trainhub/training-backend-go/internal/pkg/database"
)

type proposalRepositoryImpl struct {
	db *database.DB
}

func NewProposalRepository(db *database.DB) proposal.ProposalRepository {
	return &proposalRepositoryImpl{db: db}
}

const proposalColumns = `id, user_id, year, slot_one, slot_two, slot_one_entertained, slot_two_entertained, entertained_by, entertained_at, created_at, updated_at`

func scanProposal(row pgx.Row) (*proposal.ProposedTraining, error) {
	var p proposal.ProposedTraining
	err := row.Scan(&p.ID, &p.UserID, &p.Year, &p.SlotOne, &p.SlotTwo, &p.SlotOneEntertained, &p.SlotTwoEntertained, &p.EntertainedBy, &p.EntertainedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert inserts or replaces the slot text for the (user, year) row.
// Entertain flags reset when the text changes; an employee rewriting a
// proposal invalidates any prior acknowledgment.
func (r *proposalRepositoryImpl) Upsert(ctx context.Context, p proposal.ProposedTraining) (*proposal.ProposedTraining, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query := `
		INSERT INTO proposed_trainings (id, user_id, year, slot_one, slot_two, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (user_id, year) DO UPDATE SET
			slot_one = EXCLUDED.slot_one,
			slot_two = EXCLUDED.slot_two,
			slot_one_entertained = CASE WHEN proposed_trainings.slot_one IS DISTINCT FROM EXCLUDED.slot_one THEN false ELSE proposed_trainings.slot_one_entertained END,
			slot_two_entertained = CASE WHEN proposed_trainings.slot_two IS DISTINCT FROM EXCLUDED.slot_two THEN false ELSE proposed_trainings.slot_two_entertained END,
			updated_at = NOW()
		RETURNING ` + proposalColumns

	upserted, err := scanProposal(q.QueryRow(ctx, query, p.ID, p.UserID, p.Year, p.SlotOne, p.SlotTwo))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert proposal: %w", err)
	}
	return upserted, nil
}

func (r *proposalRepositoryImpl) GetByUserAndYear(ctx context.Context, userID string, year int) (*proposal.ProposedTraining, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProposal(q.QueryRow(ctx, `SELECT `+proposalColumns+` FROM proposed_trainings WHERE user_id = $1 AND year = $2`, userID, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, proposal.ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return p, nil
}

func (r *proposalRepositoryImpl) ListByYear(ctx context.Context, year int) ([]proposal.ProposedTraining, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+proposalColumns+` FROM proposed_trainings WHERE year = $1 ORDER BY created_at ASC`, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	defer rows.Close()

	var out []proposal.ProposedTraining
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read proposals: %w", err)
	}
	return out, nil
}

func (r *proposalRepositoryImpl) Entertain(ctx context.Context, id string, slot proposal.Slot, actorID string) (*proposal.ProposedTraining, error) {
	q := GetQuerier(ctx, r.db)

	column := "slot_one_entertained"
	if slot == proposal.SlotSecond {
		column = "slot_two_entertained"
	}

	query := fmt.Sprintf(`
		UPDATE proposed_trainings
		SET %s = true, entertained_by = $2, entertained_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING `+proposalColumns, column)

	p, err := scanProposal(q.QueryRow(ctx, query, id, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, proposal.ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to entertain proposal: %w", err)
	}
	return p, nil
}
