package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trainhub/training-backend-go/internal/domain/certificate"
	"github.com/trainhub/training-backend-go/internal/domain/profile"
	"github.com/trainhub/training-backend-go/internal/handler/http/middleware"
	"github.com/trainhub/training-backend-go/internal/handler/http/response"
)

// maxUploadMemory bounds how much of a multipart body is buffered in memory.
const maxUploadMemory = 10 << 20

type CertificateHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CertificateHandlerImpl struct {
	certificateService certificate.CertificateService
}

func NewCertificateHandler(certificateService certificate.CertificateService) CertificateHandler {
	return &CertificateHandlerImpl{certificateService: certificateService}
}

// Upload implements CertificateHandler.
func (h *CertificateHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		slog.Error("Upload certificate parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	programID := r.FormValue("program_id")
	if programID == "" {
		response.BadRequest(w, "program_id is required", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "file is required", nil)
		return
	}
	defer file.Close()

	created, err := h.certificateService.Upload(
		r.Context(),
		middleware.UserID(r),
		programID,
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		file,
	)
	if err != nil {
		slog.Error("Upload certificate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Certificate uploaded", created)
}

// List implements CertificateHandler.
func (h *CertificateHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := certificate.ListFilter{
		UserID:    q.Get("user_id"),
		ProgramID: q.Get("program_id"),
	}

	certs, err := h.certificateService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List certificates service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, certs)
}

// ListMine implements CertificateHandler.
func (h *CertificateHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	filter := certificate.ListFilter{
		UserID:    middleware.UserID(r),
		ProgramID: r.URL.Query().Get("program_id"),
	}

	certs, err := h.certificateService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List own certificates service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, certs)
}

// Delete implements CertificateHandler.
func (h *CertificateHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	isAdmin := middleware.Role(r) == string(profile.RoleAdmin)

	if err := h.certificateService.Delete(r.Context(), middleware.UserID(r), isAdmin, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Certificate deleted", nil)
}
