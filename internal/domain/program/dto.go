package program

import "time"

type CreateProgramRequest struct {
	Title    string  `json:"title"`
	Category string  `json:"category"`
	StartAt  string  `json:"start_at"` // RFC3339
	EndAt    string  `json:"end_at"`   // RFC3339
	Hours    float64 `json:"hours"`
}

type UpdateProgramRequest struct {
	Title    *string  `json:"title"`
	Category *string  `json:"category"`
	StartAt  *string  `json:"start_at"`
	EndAt    *string  `json:"end_at"`
	Hours    *float64 `json:"hours"`
	Status   *string  `json:"status"`
}

type ProgramResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	StartAt   string  `json:"start_at"`
	EndAt     string  `json:"end_at"`
	Hours     float64 `json:"hours"`
	Status    string  `json:"status"`
	CreatedBy *string `json:"created_by,omitempty"`
}

type ListFilter struct {
	Year     int
	Category string
	Status   string
	Page     int
	Limit    int
}

func ToResponse(p Program) ProgramResponse {
	return ProgramResponse{
		ID:        p.ID,
		Title:     p.Title,
		Category:  string(p.Category),
		StartAt:   p.StartAt.Format(time.RFC3339),
		EndAt:     p.EndAt.Format(time.RFC3339),
		Hours:     p.Hours,
		Status:    string(p.Status),
		CreatedBy: p.CreatedBy,
	}
}
