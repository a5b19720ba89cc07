package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/trainhub/training-backend-go/internal/domain/program"
	"github.com/trainhub/training-backend-go/internal/handler/http/middleware"
	"github.com/trainhub/training-backend-go/internal/handler/http/response"
)

type ProgramHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ProgramHandlerImpl struct {
	programService program.ProgramService
}

func NewProgramHandler(programService program.ProgramService) ProgramHandler {
	return &ProgramHandlerImpl{programService: programService}
}

// Create implements ProgramHandler.
func (h *ProgramHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req program.CreateProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create program decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.programService.Create(r.Context(), middleware.UserID(r), req)
	if err != nil {
		slog.Error("Create program service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Program created", created)
}

// GetByID implements ProgramHandler.
func (h *ProgramHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	p, err := h.programService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// List implements ProgramHandler.
func (h *ProgramHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := program.ListFilter{
		Year:     year,
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Page:     page,
		Limit:    limit,
	}

	programs, total, err := h.programService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List programs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, programs, listMeta(filter.Page, filter.Limit, total))
}

// Update implements ProgramHandler.
func (h *ProgramHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req program.UpdateProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update program decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.programService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update program service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Program updated", updated)
}

// Delete implements ProgramHandler.
func (h *ProgramHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.programService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Program deleted", nil)
}
