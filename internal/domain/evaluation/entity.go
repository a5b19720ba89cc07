package evaluation

import "time"

type Evaluation struct {
	ID          string
	UserID      string
	ProgramID   string
	Answers     map[string]string
	Comment     *string
	SubmittedAt time.Time
}

// Rating is a categorical evaluation answer.
type Rating string

const (
	RatingLemah     Rating = "LEMAH"
	RatingSederhana Rating = "SEDERHANA"
	RatingBagus     Rating = "BAGUS"
)

// QuestionKeys is the fixed set of questionnaire keys.
var QuestionKeys = []string{"q1", "q2", "q3", "q4", "q5", "q6", "q7", "q8", "q9"}

// Score maps a categorical answer to its numeric score. Unrecognized
// answers score 0 and are excluded from averages.
func Score(answer string) (float64, bool) {
	switch Rating(answer) {
	case RatingLemah:
		return 1, true
	case RatingSederhana:
		return 2, true
	case RatingBagus:
		return 3, true
	}
	return 0, false
}
