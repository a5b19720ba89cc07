package evaluation

import "time"

type SubmitEvaluationRequest struct {
	ProgramID string            `json:"program_id"`
	Answers   map[string]string `json:"answers"`
	Comment   *string           `json:"comment"`
}

type EvaluationResponse struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	ProgramID   string            `json:"program_id"`
	Answers     map[string]string `json:"answers"`
	Comment     *string           `json:"comment,omitempty"`
	SubmittedAt string            `json:"submitted_at"`
}

type ListFilter struct {
	ProgramID string
	UserID    string
	Year      int
	Page      int
	Limit     int
}

func ToResponse(e Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		ProgramID:   e.ProgramID,
		Answers:     e.Answers,
		Comment:     e.Comment,
		SubmittedAt: e.SubmittedAt.Format(time.RFC3339),
	}
}
