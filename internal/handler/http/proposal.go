package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/trainhub/training-backend-go/internal/domain/proposal"
	"github.com/trainhub/training-backend-go/internal/handler/http/middleware"
	"github.com/trainhub/training-backend-go/internal/handler/http/response"
)

type ProposalHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	ListByYear(w http.ResponseWriter, r *http.Request)
	Entertain(w http.ResponseWriter, r *http.Request)
}

type ProposalHandlerImpl struct {
	proposalService proposal.ProposalService
}

func NewProposalHandler(proposalService proposal.ProposalService) ProposalHandler {
	return &ProposalHandlerImpl{proposalService: proposalService}
}

// Submit implements ProposalHandler.
func (h *ProposalHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req proposal.SubmitProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit proposal decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.proposalService.Submit(r.Context(), middleware.UserID(r), req)
	if err != nil {
		slog.Error("Submit proposal service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Proposal saved", saved)
}

// GetMine implements ProposalHandler.
func (h *ProposalHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	p, err := h.proposalService.GetMine(r.Context(), middleware.UserID(r), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// ListByYear implements ProposalHandler.
func (h *ProposalHandlerImpl) ListByYear(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	proposals, err := h.proposalService.ListByYear(r.Context(), year)
	if err != nil {
		slog.Error("List proposals service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, proposals)
}

// Entertain implements ProposalHandler.
func (h *ProposalHandlerImpl) Entertain(w http.ResponseWriter, r *http.Request) {
	var req proposal.EntertainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Entertain proposal decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.proposalService.Entertain(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r), req)
	if err != nil {
		slog.Error("Entertain proposal service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Proposal slot entertained", updated)
}
