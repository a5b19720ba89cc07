package certificate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/domain/certificate"
	"github.com/trainhub/training-backend-go/internal/pkg/storage"
)

const maxFileSize = 5 << 20 // 5 MiB

var allowedContentTypes = map[string]string{
	"application/pdf": ".pdf",
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
}

type CertificateServiceImpl struct {
	repo           certificate.CertificateRepository
	assignmentRepo assignment.AssignmentRepository
	fileStorage    storage.FileStorage
}

func NewCertificateService(
	repo certificate.CertificateRepository,
	assignmentRepo assignment.AssignmentRepository,
	fileStorage storage.FileStorage,
) certificate.CertificateService {
	return &CertificateServiceImpl{
		repo:           repo,
		assignmentRepo: assignmentRepo,
		fileStorage:    fileStorage,
	}
}

// Upload stores the file under certificates/<user>/<uuid><ext> and records
// the certificate row. Only PDF, PNG and JPEG files up to the size limit
// are accepted, and the caller must hold an Attended assignment.
func (s *CertificateServiceImpl) Upload(ctx context.Context, userID, programID, fileName, contentType string, size int64, file io.Reader) (*certificate.CertificateResponse, error) {
	ext, ok := allowedContentTypes[strings.ToLower(contentType)]
	if !ok {
		return nil, certificate.ErrUnsupportedFileType
	}
	if size > maxFileSize {
		return nil, certificate.ErrFileTooLarge
	}

	a, err := s.assignmentRepo.GetByUserAndProgram(ctx, userID, programID)
	if err != nil {
		if errors.Is(err, assignment.ErrAssignmentNotFound) {
			return nil, certificate.ErrNotAttended
		}
		return nil, err
	}
	if a.Status != assignment.StatusAttended {
		return nil, certificate.ErrNotAttended
	}

	path := filepath.Join("certificates", userID, uuid.NewString()+ext)
	storedPath, err := s.fileStorage.Upload(ctx, file, path, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	created, err := s.repo.Create(ctx, certificate.Certificate{
		UserID:      userID,
		ProgramID:   programID,
		FilePath:    storedPath,
		FileName:    fileName,
		ContentType: contentType,
	})
	if err != nil {
		// Orphaned files are cleaned up best-effort.
		_ = s.fileStorage.Delete(ctx, storedPath)
		return nil, fmt.Errorf("failed to record certificate: %w", err)
	}

	url, err := s.fileStorage.GetURL(ctx, created.FilePath, 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to build file url: %w", err)
	}

	resp := certificate.ToResponse(*created, url)
	return &resp, nil
}

func (s *CertificateServiceImpl) List(ctx context.Context, filter certificate.ListFilter) ([]certificate.CertificateResponse, error) {
	certs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}

	out := make([]certificate.CertificateResponse, 0, len(certs))
	for _, c := range certs {
		url, err := s.fileStorage.GetURL(ctx, c.FilePath, 24*time.Hour)
		if err != nil {
			return nil, fmt.Errorf("failed to build file url: %w", err)
		}
		out = append(out, certificate.ToResponse(c, url))
	}
	return out, nil
}

// Delete removes the certificate row and its stored file. Owners may
// delete their own certificates; admins may delete any.
func (s *CertificateServiceImpl) Delete(ctx context.Context, actorID string, isAdmin bool, id string) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && c.UserID != actorID {
		return certificate.ErrCertificateNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	// The row is gone; a failed file delete only leaks storage.
	_ = s.fileStorage.Delete(ctx, c.FilePath)
	return nil
}
