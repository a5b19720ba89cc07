package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/handler/http/middleware"
	"github.com/trainhub/training-backend-go/internal/handler/http/response"
)

type AssignmentHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	MarkAttendance(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AssignmentHandlerImpl struct {
	assignmentService assignment.AssignmentService
}

func NewAssignmentHandler(assignmentService assignment.AssignmentService) AssignmentHandler {
	return &AssignmentHandlerImpl{assignmentService: assignmentService}
}

// Assign implements AssignmentHandler.
func (h *AssignmentHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignment.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Assign decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.assignmentService.Assign(r.Context(), req)
	if err != nil {
		slog.Error("Assign service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Users assigned", created)
}

// List implements AssignmentHandler.
func (h *AssignmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := listFilterFromQuery(r)
	filter.UserID = r.URL.Query().Get("user_id")

	rows, total, err := h.assignmentService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List assignments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, rows, listMeta(filter.Page, filter.Limit, total))
}

// ListMine implements AssignmentHandler.
func (h *AssignmentHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	filter := listFilterFromQuery(r)
	filter.UserID = middleware.UserID(r)

	rows, total, err := h.assignmentService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List own assignments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, rows, listMeta(filter.Page, filter.Limit, total))
}

// UpdateStatus implements AssignmentHandler.
func (h *AssignmentHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req assignment.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.assignmentService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		slog.Error("UpdateStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment status updated", nil)
}

// MarkAttendance implements AssignmentHandler.
func (h *AssignmentHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	if err := h.assignmentService.MarkAttendance(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r)); err != nil {
		slog.Error("MarkAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked", nil)
}

// Register implements AssignmentHandler.
func (h *AssignmentHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	if err := h.assignmentService.Register(r.Context(), middleware.UserID(r), chi.URLParam(r, "programID")); err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Registered for program", nil)
}

// Delete implements AssignmentHandler.
func (h *AssignmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.assignmentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Assignment removed", nil)
}

func listFilterFromQuery(r *http.Request) assignment.ListFilter {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	return assignment.ListFilter{
		ProgramID: q.Get("program_id"),
		Status:    q.Get("status"),
		Year:      year,
		Page:      page,
		Limit:     limit,
	}
}
