package evaluation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/domain/evaluation"
)

type fakeAssignmentRepo struct {
	byUserProgram map[string]*assignment.Assignment
}

func key(userID, programID string) string { return userID + "/" + programID }

func (f *fakeAssignmentRepo) Create(ctx context.Context, a assignment.Assignment) (*assignment.Assignment, error) {
	return &a, nil
}

func (f *fakeAssignmentRepo) GetByID(ctx context.Context, id string) (*assignment.Assignment, error) {
	return nil, assignment.ErrAssignmentNotFound
}

func (f *fakeAssignmentRepo) GetByUserAndProgram(ctx context.Context, userID, programID string) (*assignment.Assignment, error) {
	if a, ok := f.byUserProgram[key(userID, programID)]; ok {
		return a, nil
	}
	return nil, assignment.ErrAssignmentNotFound
}

func (f *fakeAssignmentRepo) List(ctx context.Context, filter assignment.ListFilter) ([]assignment.WithProgram, int64, error) {
	return nil, 0, nil
}

func (f *fakeAssignmentRepo) UpdateStatus(ctx context.Context, id string, status assignment.Status) error {
	return nil
}

func (f *fakeAssignmentRepo) MarkAttendance(ctx context.Context, id string, markedBy string) error {
	return nil
}

func (f *fakeAssignmentRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeEvaluationRepo struct {
	stored map[string]*evaluation.Evaluation
}

func newFakeEvaluationRepo() *fakeEvaluationRepo {
	return &fakeEvaluationRepo{stored: make(map[string]*evaluation.Evaluation)}
}

func (f *fakeEvaluationRepo) Create(ctx context.Context, e evaluation.Evaluation) (*evaluation.Evaluation, error) {
	k := key(e.UserID, e.ProgramID)
	if _, ok := f.stored[k]; ok {
		return nil, evaluation.ErrEvaluationExists
	}
	e.ID = "eval-" + k
	e.SubmittedAt = time.Now()
	f.stored[k] = &e
	return &e, nil
}

func (f *fakeEvaluationRepo) GetByID(ctx context.Context, id string) (*evaluation.Evaluation, error) {
	for _, e := range f.stored {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, evaluation.ErrEvaluationNotFound
}

func (f *fakeEvaluationRepo) Exists(ctx context.Context, userID, programID string) (bool, error) {
	_, ok := f.stored[key(userID, programID)]
	return ok, nil
}

func (f *fakeEvaluationRepo) List(ctx context.Context, filter evaluation.ListFilter) ([]evaluation.Evaluation, int64, error) {
	out := make([]evaluation.Evaluation, 0, len(f.stored))
	for _, e := range f.stored {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func attendedRepo(userID, programID string) *fakeAssignmentRepo {
	return &fakeAssignmentRepo{byUserProgram: map[string]*assignment.Assignment{
		key(userID, programID): {
			ID:        "a1",
			UserID:    userID,
			ProgramID: programID,
			Status:    assignment.StatusAttended,
		},
	}}
}

func validAnswers() map[string]string {
	return map[string]string{"q1": "BAGUS", "q2": "SEDERHANA", "q3": "LEMAH"}
}

func TestSubmitEvaluation(t *testing.T) {
	svc := NewEvaluationService(newFakeEvaluationRepo(), attendedRepo("u1", "p1"))

	resp, err := svc.Submit(context.Background(), "u1", evaluation.SubmitEvaluationRequest{
		ProgramID: "p1",
		Answers:   validAnswers(),
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", resp.UserID)
	assert.Equal(t, "p1", resp.ProgramID)
	assert.Equal(t, "BAGUS", resp.Answers["q1"])
}

func TestSubmitDuplicateConflicts(t *testing.T) {
	svc := NewEvaluationService(newFakeEvaluationRepo(), attendedRepo("u1", "p1"))

	_, err := svc.Submit(context.Background(), "u1", evaluation.SubmitEvaluationRequest{
		ProgramID: "p1",
		Answers:   validAnswers(),
	})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), "u1", evaluation.SubmitEvaluationRequest{
		ProgramID: "p1",
		Answers:   validAnswers(),
	})
	assert.ErrorIs(t, err, evaluation.ErrEvaluationExists)
}

func TestSubmitRequiresAttendedAssignment(t *testing.T) {
	// Assigned but never attended.
	repo := &fakeAssignmentRepo{byUserProgram: map[string]*assignment.Assignment{
		key("u1", "p1"): {ID: "a1", UserID: "u1", ProgramID: "p1", Status: assignment.StatusAssigned},
	}}
	svc := NewEvaluationService(newFakeEvaluationRepo(), repo)

	_, err := svc.Submit(context.Background(), "u1", evaluation.SubmitEvaluationRequest{
		ProgramID: "p1",
		Answers:   validAnswers(),
	})
	assert.ErrorIs(t, err, evaluation.ErrNotAttended)

	// No assignment at all.
	_, err = svc.Submit(context.Background(), "u1", evaluation.SubmitEvaluationRequest{
		ProgramID: "p2",
		Answers:   validAnswers(),
	})
	assert.ErrorIs(t, err, evaluation.ErrNotAttended)
}

func TestSubmitRejectsUnknownAnswer(t *testing.T) {
	svc := NewEvaluationService(newFakeEvaluationRepo(), attendedRepo("u1", "p1"))

	_, err := svc.Submit(context.Background(), "u1", evaluation.SubmitEvaluationRequest{
		ProgramID: "p1",
		Answers:   map[string]string{"q1": "EXCELLENT"},
	})
	assert.ErrorIs(t, err, evaluation.ErrInvalidAnswer)
}

func TestSubmitRejectsUnknownQuestionKey(t *testing.T) {
	svc := NewEvaluationService(newFakeEvaluationRepo(), attendedRepo("u1", "p1"))

	_, err := svc.Submit(context.Background(), "u1", evaluation.SubmitEvaluationRequest{
		ProgramID: "p1",
		Answers:   map[string]string{"q10": "BAGUS"},
	})
	assert.Error(t, err)
}
