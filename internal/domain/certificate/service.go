package certificate

import (
	"context"
	"io"
)

// CertificateService defines the interface for certificate operations
type CertificateService interface {
	// Upload stores the file and records the certificate. The caller must
	// hold an Attended assignment for the program.
	Upload(ctx context.Context, userID, programID, fileName, contentType string, size int64, file io.Reader) (*CertificateResponse, error)

	List(ctx context.Context, filter ListFilter) ([]CertificateResponse, error)
	Delete(ctx context.Context, actorID string, isAdmin bool, id string) error
}
