package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trainhub/training-backend-go/internal/domain/evaluation"
)

func eval(userID, programID string, answers map[string]string) evaluation.Evaluation {
	return evaluation.Evaluation{
		ID:        userID + "-" + programID,
		UserID:    userID,
		ProgramID: programID,
		Answers:   answers,
	}
}

func allAnswers(rating string) map[string]string {
	out := make(map[string]string, len(evaluation.QuestionKeys))
	for _, key := range evaluation.QuestionKeys {
		out[key] = rating
	}
	return out
}

func TestSummarizeEvaluations_AllBagus(t *testing.T) {
	evals := []evaluation.Evaluation{
		eval("u1", "p1", allAnswers("BAGUS")),
		eval("u2", "p1", allAnswers("BAGUS")),
		eval("u3", "p1", allAnswers("BAGUS")),
	}

	got := SummarizeEvaluations(evals)

	assert.Equal(t, 3, got.TotalResponses)
	require.Len(t, got.Questions, 9)
	for _, q := range got.Questions {
		assert.Equal(t, 3.0, q.Average)
		assert.Equal(t, 3, q.Count)
	}
}

func TestSummarizeEvaluations_MixedScenario(t *testing.T) {
	// q1: LEMAH(1) + BAGUS(3) -> average 2.0 over 2 respondents.
	evals := []evaluation.Evaluation{
		eval("u1", "p1", map[string]string{"q1": "LEMAH"}),
		eval("u2", "p1", map[string]string{"q1": "BAGUS"}),
	}

	got := SummarizeEvaluations(evals)

	assert.Equal(t, 2, got.TotalResponses)
	assert.Equal(t, "q1", got.Questions[0].Question)
	assert.Equal(t, 2.0, got.Questions[0].Average)
	assert.Equal(t, 2, got.Questions[0].Count)

	// Unanswered questions report 0, not an error.
	for _, q := range got.Questions[1:] {
		assert.Zero(t, q.Average)
		assert.Zero(t, q.Count)
	}
}

func TestSummarizeEvaluations_ExcludesUnrecognizedAnswers(t *testing.T) {
	evals := []evaluation.Evaluation{
		eval("u1", "p1", map[string]string{"q1": "SEDERHANA", "q2": "great"}),
		eval("u2", "p1", map[string]string{"q1": "bagus"}), // wrong case, excluded
	}

	got := SummarizeEvaluations(evals)

	assert.Equal(t, 2, got.TotalResponses)
	assert.Equal(t, 2.0, got.Questions[0].Average)
	assert.Equal(t, 1, got.Questions[0].Count)
	assert.Zero(t, got.Questions[1].Count)
}

func TestSummarizeEvaluations_TwoDecimalRounding(t *testing.T) {
	// 1 + 3 + 3 = 7 over 3 -> 2.333... -> 2.33
	evals := []evaluation.Evaluation{
		eval("u1", "p1", map[string]string{"q5": "LEMAH"}),
		eval("u2", "p1", map[string]string{"q5": "BAGUS"}),
		eval("u3", "p1", map[string]string{"q5": "BAGUS"}),
	}

	got := SummarizeEvaluations(evals)
	assert.Equal(t, 2.33, got.Questions[4].Average)
}

func TestSummarizeEvaluations_EmptyInput(t *testing.T) {
	got := SummarizeEvaluations(nil)
	assert.Zero(t, got.TotalResponses)
	require.Len(t, got.Questions, 9)
	for _, q := range got.Questions {
		assert.Zero(t, q.Average)
		assert.Zero(t, q.Count)
	}
}
