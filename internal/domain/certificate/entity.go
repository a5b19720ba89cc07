package certificate

import "time"

type Certificate struct {
	ID          string
	UserID      string
	ProgramID   string
	FilePath    string
	FileName    string
	ContentType string
	UploadedAt  time.Time
}
