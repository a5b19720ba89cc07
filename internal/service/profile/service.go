package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/trainhub/training-backend-go/internal/domain/profile"
	"github.com/trainhub/training-backend-go/internal/pkg/validator"
)

type ProfileServiceImpl struct {
	repo profile.ProfileRepository
}

func NewProfileService(repo profile.ProfileRepository) profile.ProfileService {
	return &ProfileServiceImpl{repo: repo}
}

func (s *ProfileServiceImpl) Create(ctx context.Context, req profile.CreateProfileRequest) (*profile.ProfileResponse, error) {
	var ve validator.ValidationErrors
	if validator.IsEmpty(req.Name) {
		ve = append(ve, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidEmail(req.Email) {
		ve = append(ve, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	role := profile.Role(req.Role)
	if role == "" {
		role = profile.RoleEmployee
	}
	if role != profile.RoleAdmin && role != profile.RoleEmployee {
		ve = append(ve, validator.ValidationError{Field: "role", Message: "role must be admin or employee"})
	}
	if len(ve) > 0 {
		return nil, ve
	}

	p := profile.Profile{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Department: req.Department,
		Role:       role,
		Status:     profile.StatusActive,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, profile.ErrEmailExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	resp := profile.ToResponse(*created)
	return &resp, nil
}

func (s *ProfileServiceImpl) GetByID(ctx context.Context, id string) (*profile.ProfileResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := profile.ToResponse(*p)
	return &resp, nil
}

func (s *ProfileServiceImpl) List(ctx context.Context, filter profile.ListFilter) ([]profile.ProfileResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	profiles, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list profiles: %w", err)
	}

	out := make([]profile.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, profile.ToResponse(p))
	}
	return out, total, nil
}

func (s *ProfileServiceImpl) Update(ctx context.Context, id string, req profile.UpdateProfileRequest) (*profile.ProfileResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if validator.IsEmpty(*req.Name) {
			return nil, validator.ValidationErrors{{Field: "name", Message: "name cannot be empty"}}
		}
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		if !validator.IsValidEmail(*req.Email) {
			return nil, validator.ValidationErrors{{Field: "email", Message: "a valid email is required"}}
		}
		p.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Department != nil {
		p.Department = req.Department
	}
	if req.Role != nil {
		role := profile.Role(*req.Role)
		if role != profile.RoleAdmin && role != profile.RoleEmployee {
			return nil, profile.ErrInvalidRole
		}
		p.Role = role
	}
	if req.Status != nil {
		status := profile.Status(*req.Status)
		if status != profile.StatusActive && status != profile.StatusInactive {
			return nil, profile.ErrInvalidStatus
		}
		p.Status = status
	}

	updated, err := s.repo.Update(ctx, *p)
	if err != nil {
		if errors.Is(err, profile.ErrEmailExists) || errors.Is(err, profile.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	resp := profile.ToResponse(*updated)
	return &resp, nil
}

func (s *ProfileServiceImpl) Deactivate(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SetStatus(ctx, id, profile.StatusInactive)
}

func (s *ProfileServiceImpl) Reactivate(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SetStatus(ctx, id, profile.StatusActive)
}

// Delete soft-deletes a profile. Admins cannot delete themselves.
func (s *ProfileServiceImpl) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return profile.ErrCannotDeleteSelf
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}
