package proposal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/trainhub/training-backend-go/internal/domain/proposal"
)

type ProposalServiceImpl struct {
	repo proposal.ProposalRepository

	// now is swappable so the submission-window rule is testable.
	now func() time.Time
}

func NewProposalService(repo proposal.ProposalRepository) proposal.ProposalService {
	return &ProposalServiceImpl{
		repo: repo,
		now:  time.Now,
	}
}

// Submit upserts the caller's proposal row for the resolved target year.
// December submissions target the coming year, January ones the current
// year; any other month rejects the write.
func (s *ProposalServiceImpl) Submit(ctx context.Context, userID string, req proposal.SubmitProposalRequest) (*proposal.ProposalResponse, error) {
	year, open := proposal.TargetYear(s.now())
	if !open {
		return nil, proposal.ErrProposalWindowClosed
	}

	slotOne := trimSlot(req.SlotOne)
	slotTwo := trimSlot(req.SlotTwo)
	if slotOne == nil && slotTwo == nil {
		return nil, proposal.ErrEmptyProposal
	}

	saved, err := s.repo.Upsert(ctx, proposal.ProposedTraining{
		UserID:  userID,
		Year:    year,
		SlotOne: slotOne,
		SlotTwo: slotTwo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store proposal: %w", err)
	}

	resp := proposal.ToResponse(*saved)
	return &resp, nil
}

func (s *ProposalServiceImpl) GetMine(ctx context.Context, userID string, year int) (*proposal.ProposalResponse, error) {
	if year <= 0 {
		year = s.now().Year()
	}

	p, err := s.repo.GetByUserAndYear(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	resp := proposal.ToResponse(*p)
	return &resp, nil
}

func (s *ProposalServiceImpl) ListByYear(ctx context.Context, year int) ([]proposal.ProposalResponse, error) {
	if year <= 0 {
		year = s.now().Year()
	}

	proposals, err := s.repo.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	out := make([]proposal.ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, proposal.ToResponse(p))
	}
	return out, nil
}

// Entertain marks one slot of a proposal entertained. The slot must be
// filled; entertaining an empty slot is rejected.
func (s *ProposalServiceImpl) Entertain(ctx context.Context, id string, actorID string, req proposal.EntertainRequest) (*proposal.ProposalResponse, error) {
	slot := proposal.Slot(req.Slot)
	if slot != proposal.SlotFirst && slot != proposal.SlotSecond {
		return nil, proposal.ErrInvalidSlot
	}

	updated, err := s.repo.Entertain(ctx, id, slot, actorID)
	if err != nil {
		return nil, err
	}

	resp := proposal.ToResponse(*updated)
	return &resp, nil
}

// trimSlot normalizes a slot's free text; whitespace-only text counts as
// an empty slot.
func trimSlot(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
