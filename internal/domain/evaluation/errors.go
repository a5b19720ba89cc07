package evaluation

import "errors"

var (
	ErrEvaluationNotFound = errors.New("evaluation not found")
	ErrEvaluationExists   = errors.New("evaluation already submitted for this program")
	ErrInvalidAnswer      = errors.New("answer must be LEMAH, SEDERHANA or BAGUS")
	ErrNotAttended        = errors.New("program must be attended before evaluating")
)
