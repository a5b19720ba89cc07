package evaluation

import (
	"context"
	"errors"
	"fmt"

	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/domain/evaluation"
	"github.com/trainhub/training-backend-go/internal/pkg/validator"
)

type EvaluationServiceImpl struct {
	repo           evaluation.EvaluationRepository
	assignmentRepo assignment.AssignmentRepository
}

func NewEvaluationService(repo evaluation.EvaluationRepository, assignmentRepo assignment.AssignmentRepository) evaluation.EvaluationService {
	return &EvaluationServiceImpl{
		repo:           repo,
		assignmentRepo: assignmentRepo,
	}
}

// Submit stores the caller's questionnaire. Answers must be drawn from
// the categorical rating set; the caller must hold an Attended assignment
// on the program and must not have evaluated it before.
func (s *EvaluationServiceImpl) Submit(ctx context.Context, userID string, req evaluation.SubmitEvaluationRequest) (*evaluation.EvaluationResponse, error) {
	if validator.IsEmpty(req.ProgramID) {
		return nil, validator.ValidationErrors{{Field: "program_id", Message: "program_id is required"}}
	}
	if len(req.Answers) == 0 {
		return nil, validator.ValidationErrors{{Field: "answers", Message: "at least one answer is required"}}
	}
	for key, answer := range req.Answers {
		if !knownQuestion(key) {
			return nil, validator.ValidationErrors{{Field: key, Message: "unknown question key"}}
		}
		if _, ok := evaluation.Score(answer); !ok {
			return nil, evaluation.ErrInvalidAnswer
		}
	}

	a, err := s.assignmentRepo.GetByUserAndProgram(ctx, userID, req.ProgramID)
	if err != nil {
		if errors.Is(err, assignment.ErrAssignmentNotFound) {
			return nil, evaluation.ErrNotAttended
		}
		return nil, err
	}
	if a.Status != assignment.StatusAttended {
		return nil, evaluation.ErrNotAttended
	}

	exists, err := s.repo.Exists(ctx, userID, req.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing evaluation: %w", err)
	}
	if exists {
		return nil, evaluation.ErrEvaluationExists
	}

	created, err := s.repo.Create(ctx, evaluation.Evaluation{
		UserID:    userID,
		ProgramID: req.ProgramID,
		Answers:   req.Answers,
		Comment:   req.Comment,
	})
	if err != nil {
		if errors.Is(err, evaluation.ErrEvaluationExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to store evaluation: %w", err)
	}

	resp := evaluation.ToResponse(*created)
	return &resp, nil
}

func (s *EvaluationServiceImpl) List(ctx context.Context, filter evaluation.ListFilter) ([]evaluation.EvaluationResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	evals, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list evaluations: %w", err)
	}

	out := make([]evaluation.EvaluationResponse, 0, len(evals))
	for _, e := range evals {
		out = append(out, evaluation.ToResponse(e))
	}
	return out, total, nil
}

func knownQuestion(key string) bool {
	for _, k := range evaluation.QuestionKeys {
		if k == key {
			return true
		}
	}
	return false
}
