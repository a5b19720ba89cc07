package program

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/trainhub/training-backend-go/internal/domain/program"
	"github.com/trainhub/training-backend-go/internal/pkg/validator"
)

type ProgramServiceImpl struct {
	repo program.ProgramRepository
}

func NewProgramService(repo program.ProgramRepository) program.ProgramService {
	return &ProgramServiceImpl{repo: repo}
}

func (s *ProgramServiceImpl) Create(ctx context.Context, actorID string, req program.CreateProgramRequest) (*program.ProgramResponse, error) {
	var ve validator.ValidationErrors
	if validator.IsEmpty(req.Title) {
		ve = append(ve, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	startAt, ok := validator.IsValidTimestamp(req.StartAt)
	if !ok {
		ve = append(ve, validator.ValidationError{Field: "start_at", Message: "start_at must be an RFC3339 timestamp"})
	}
	endAt, ok := validator.IsValidTimestamp(req.EndAt)
	if !ok {
		ve = append(ve, validator.ValidationError{Field: "end_at", Message: "end_at must be an RFC3339 timestamp"})
	}
	if len(ve) > 0 {
		return nil, ve
	}

	if endAt.Before(startAt) {
		return nil, program.ErrInvalidDateRange
	}
	if req.Hours < 0 {
		return nil, program.ErrNegativeHours
	}

	category := program.Category(req.Category)
	if req.Category != "" && !program.ValidCategory(category) {
		return nil, program.ErrInvalidCategory
	}
	if req.Category == "" {
		category = program.CategoryOthers
	}

	status := program.StatusScheduled
	now := time.Now()
	if !endAt.After(now) {
		status = program.StatusCompleted
	} else if !startAt.After(now) {
		status = program.StatusOngoing
	}

	p := program.Program{
		Title:     strings.TrimSpace(req.Title),
		Category:  category,
		StartAt:   startAt,
		EndAt:     endAt,
		Hours:     req.Hours,
		Status:    status,
		CreatedBy: &actorID,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create program: %w", err)
	}

	resp := program.ToResponse(*created)
	return &resp, nil
}

func (s *ProgramServiceImpl) GetByID(ctx context.Context, id string) (*program.ProgramResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := program.ToResponse(*p)
	return &resp, nil
}

func (s *ProgramServiceImpl) List(ctx context.Context, filter program.ListFilter) ([]program.ProgramResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Year != 0 && !validator.IsValidYear(filter.Year) {
		return nil, 0, validator.ValidationErrors{{Field: "year", Message: "year is out of range"}}
	}

	programs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list programs: %w", err)
	}

	out := make([]program.ProgramResponse, 0, len(programs))
	for _, p := range programs {
		out = append(out, program.ToResponse(p))
	}
	return out, total, nil
}

func (s *ProgramServiceImpl) Update(ctx context.Context, id string, req program.UpdateProgramRequest) (*program.ProgramResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if validator.IsEmpty(*req.Title) {
			return nil, validator.ValidationErrors{{Field: "title", Message: "title cannot be empty"}}
		}
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.Category != nil {
		category := program.Category(*req.Category)
		if !program.ValidCategory(category) {
			return nil, program.ErrInvalidCategory
		}
		p.Category = category
	}
	if req.StartAt != nil {
		startAt, ok := validator.IsValidTimestamp(*req.StartAt)
		if !ok {
			return nil, validator.ValidationErrors{{Field: "start_at", Message: "start_at must be an RFC3339 timestamp"}}
		}
		p.StartAt = startAt
	}
	if req.EndAt != nil {
		endAt, ok := validator.IsValidTimestamp(*req.EndAt)
		if !ok {
			return nil, validator.ValidationErrors{{Field: "end_at", Message: "end_at must be an RFC3339 timestamp"}}
		}
		p.EndAt = endAt
	}
	if p.EndAt.Before(p.StartAt) {
		return nil, program.ErrInvalidDateRange
	}
	if req.Hours != nil {
		if *req.Hours < 0 {
			return nil, program.ErrNegativeHours
		}
		p.Hours = *req.Hours
	}
	if req.Status != nil {
		status := program.Status(*req.Status)
		if !program.ValidStatus(status) {
			return nil, program.ErrInvalidProgramStatus
		}
		p.Status = status
	}

	updated, err := s.repo.Update(ctx, *p)
	if err != nil {
		return nil, fmt.Errorf("failed to update program: %w", err)
	}

	resp := program.ToResponse(*updated)
	return &resp, nil
}

func (s *ProgramServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}
