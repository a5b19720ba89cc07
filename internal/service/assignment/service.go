package assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/domain/profile"
	"github.com/trainhub/training-backend-go/internal/domain/program"
	"github.com/trainhub/training-backend-go/internal/pkg/validator"
)

type AssignmentServiceImpl struct {
	repo        assignment.AssignmentRepository
	programRepo program.ProgramRepository
	profileRepo profile.ProfileRepository
}

func NewAssignmentService(
	repo assignment.AssignmentRepository,
	programRepo program.ProgramRepository,
	profileRepo profile.ProfileRepository,
) assignment.AssignmentService {
	return &AssignmentServiceImpl{
		repo:        repo,
		programRepo: programRepo,
		profileRepo: profileRepo,
	}
}

// Assign creates one assignment per user. The program and every user must
// exist; a user already holding an assignment on the program fails the
// whole batch so the caller sees exactly which user conflicted.
func (s *AssignmentServiceImpl) Assign(ctx context.Context, req assignment.AssignRequest) ([]assignment.AssignmentResponse, error) {
	if validator.IsEmpty(req.ProgramID) {
		return nil, validator.ValidationErrors{{Field: "program_id", Message: "program_id is required"}}
	}
	if len(req.UserIDs) == 0 {
		return nil, validator.ValidationErrors{{Field: "user_ids", Message: "at least one user is required"}}
	}

	if _, err := s.programRepo.GetByID(ctx, req.ProgramID); err != nil {
		return nil, err
	}

	out := make([]assignment.AssignmentResponse, 0, len(req.UserIDs))
	for _, userID := range req.UserIDs {
		if _, err := s.profileRepo.GetByID(ctx, userID); err != nil {
			if errors.Is(err, profile.ErrProfileNotFound) {
				return nil, fmt.Errorf("user %s: %w", userID, err)
			}
			return nil, err
		}

		created, err := s.repo.Create(ctx, assignment.Assignment{
			UserID:    userID,
			ProgramID: req.ProgramID,
			Status:    assignment.StatusAssigned,
		})
		if err != nil {
			if errors.Is(err, assignment.ErrAlreadyAssigned) {
				return nil, fmt.Errorf("user %s: %w", userID, err)
			}
			return nil, fmt.Errorf("failed to create assignment: %w", err)
		}
		out = append(out, assignment.ToResponse(assignment.WithProgram{Assignment: *created}))
	}
	return out, nil
}

func (s *AssignmentServiceImpl) List(ctx context.Context, filter assignment.ListFilter) ([]assignment.AssignmentResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Status != "" && !assignment.ValidStatus(assignment.Status(filter.Status)) {
		return nil, 0, assignment.ErrInvalidStatus
	}

	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}

	out := make([]assignment.AssignmentResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, assignment.ToResponse(row))
	}
	return out, total, nil
}

func (s *AssignmentServiceImpl) UpdateStatus(ctx context.Context, id string, req assignment.UpdateStatusRequest) error {
	status := assignment.Status(req.Status)
	if !assignment.ValidStatus(status) {
		return assignment.ErrInvalidStatus
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// MarkAttendance flips an assignment to Attended and records who marked
// it. Marking twice is rejected.
func (s *AssignmentServiceImpl) MarkAttendance(ctx context.Context, id string, markedBy string) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.Status == assignment.StatusAttended {
		return assignment.ErrAlreadyAttended
	}
	return s.repo.MarkAttendance(ctx, id, markedBy)
}

// Register moves the caller's own assignment from Assigned to Registered.
func (s *AssignmentServiceImpl) Register(ctx context.Context, userID, programID string) error {
	a, err := s.repo.GetByUserAndProgram(ctx, userID, programID)
	if err != nil {
		if errors.Is(err, assignment.ErrAssignmentNotFound) {
			return assignment.ErrNotAssigned
		}
		return err
	}
	if a.Status != assignment.StatusAssigned {
		return assignment.ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, a.ID, assignment.StatusRegistered)
}

func (s *AssignmentServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
