package certificate

import "time"

type CertificateResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	ProgramID   string `json:"program_id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	URL         string `json:"url"`
	UploadedAt  string `json:"uploaded_at"`
}

type ListFilter struct {
	UserID    string
	ProgramID string
}

func ToResponse(c Certificate, url string) CertificateResponse {
	return CertificateResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		ProgramID:   c.ProgramID,
		FileName:    c.FileName,
		ContentType: c.ContentType,
		URL:         url,
		UploadedAt:  c.UploadedAt.Format(time.RFC3339),
	}
}
