package compliance

import (
	"math"

	"github.com/trainhub/training-backend-go/internal/domain/dashboard"
	"github.com/trainhub/training-backend-go/internal/domain/evaluation"
)

// SummarizeEvaluations averages the mapped answer scores per question
// across all evaluations. Missing or unrecognized answers are excluded
// from both sum and count, never treated as zero. Averages round to two
// decimals; a question nobody answered reports 0. TotalResponses counts
// evaluation records, not per-question answers.
func SummarizeEvaluations(evals []evaluation.Evaluation) dashboard.EvaluationSummary {
	questions := make([]dashboard.QuestionAverage, 0, len(evaluation.QuestionKeys))

	for _, key := range evaluation.QuestionKeys {
		var sum float64
		var count int
		for _, e := range evals {
			answer, ok := e.Answers[key]
			if !ok {
				continue
			}
			score, valid := evaluation.Score(answer)
			if !valid {
				continue
			}
			sum += score
			count++
		}

		avg := 0.0
		if count > 0 {
			avg = math.Round(sum/float64(count)*100) / 100
		}
		questions = append(questions, dashboard.QuestionAverage{
			Question: key,
			Average:  avg,
			Count:    count,
		})
	}

	return dashboard.EvaluationSummary{
		Questions:      questions,
		TotalResponses: len(evals),
	}
}
