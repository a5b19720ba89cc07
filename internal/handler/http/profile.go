package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/trainhub/training-backend-go/internal/domain/profile"
	"github.com/trainhub/training-backend-go/internal/handler/http/middleware"
	"github.com/trainhub/training-backend-go/internal/handler/http/response"
)

type ProfileHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetMe(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	Reactivate(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ProfileHandlerImpl struct {
	profileService profile.ProfileService
}

func NewProfileHandler(profileService profile.ProfileService) ProfileHandler {
	return &ProfileHandlerImpl{profileService: profileService}
}

// Create implements ProfileHandler.
func (h *ProfileHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req profile.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create profile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.profileService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Profile created", created)
}

// GetByID implements ProfileHandler.
func (h *ProfileHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.profileService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// GetMe implements ProfileHandler.
func (h *ProfileHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	p, err := h.profileService.GetByID(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// List implements ProfileHandler.
func (h *ProfileHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := profile.ListFilter{
		Department: q.Get("department"),
		Status:     q.Get("status"),
		Search:     q.Get("search"),
		Page:       page,
		Limit:      limit,
	}

	profiles, total, err := h.profileService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List profiles service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, profiles, listMeta(filter.Page, filter.Limit, total))
}

// Update implements ProfileHandler.
func (h *ProfileHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req profile.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update profile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.profileService.Update(r.Context(), id, req)
	if err != nil {
		slog.Error("Update profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated", updated)
}

// Deactivate implements ProfileHandler.
func (h *ProfileHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.profileService.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile deactivated", nil)
}

// Reactivate implements ProfileHandler.
func (h *ProfileHandlerImpl) Reactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.profileService.Reactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile reactivated", nil)
}

// Delete implements ProfileHandler.
func (h *ProfileHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.profileService.Delete(r.Context(), middleware.UserID(r), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile deleted", nil)
}

// listMeta builds the pagination meta block shared by the list endpoints.
func listMeta(page, limit int, total int64) *response.Meta {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
