package assignment

import "time"

type AssignRequest struct {
	ProgramID string   `json:"program_id"`
	UserIDs   []string `json:"user_ids"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type AssignmentResponse struct {
	ID                 string  `json:"id"`
	UserID             string  `json:"user_id"`
	ProgramID          string  `json:"program_id"`
	Status             string  `json:"status"`
	AttendanceMarkedBy *string `json:"attendance_marked_by,omitempty"`
	AttendanceMarkedAt *string `json:"attendance_marked_at,omitempty"`
	ProgramTitle       *string `json:"program_title,omitempty"`
	ProgramCategory    *string `json:"program_category,omitempty"`
	ProgramHours       float64 `json:"program_hours"`
	ProgramStartAt     *string `json:"program_start_at,omitempty"`
	ProgramEndAt       *string `json:"program_end_at,omitempty"`
}

type ListFilter struct {
	UserID    string
	ProgramID string
	Status    string
	Year      int
	Page      int
	Limit     int
}

func ToResponse(row WithProgram) AssignmentResponse {
	resp := AssignmentResponse{
		ID:           row.ID,
		UserID:       row.UserID,
		ProgramID:    row.ProgramID,
		Status:       string(row.Assignment.Status),
		ProgramTitle: row.ProgramTitle,
		ProgramHours: row.Hours(),
	}
	resp.AttendanceMarkedBy = row.AttendanceMarkedBy
	if row.AttendanceMarkedAt != nil {
		s := row.AttendanceMarkedAt.Format(time.RFC3339)
		resp.AttendanceMarkedAt = &s
	}
	if row.ProgramCategory != nil {
		s := string(*row.ProgramCategory)
		resp.ProgramCategory = &s
	}
	if row.ProgramStartAt != nil {
		s := row.ProgramStartAt.Format(time.RFC3339)
		resp.ProgramStartAt = &s
	}
	if row.ProgramEndAt != nil {
		s := row.ProgramEndAt.Format(time.RFC3339)
		resp.ProgramEndAt = &s
	}
	return resp
}
