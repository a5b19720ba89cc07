package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/trainhub/training-backend-go/internal/domain/evaluation"
	"github.com/trainhub/training-backend-go/internal/handler/http/middleware"
	"github.com/trainhub/training-backend-go/internal/handler/http/response"
)

type EvaluationHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type EvaluationHandlerImpl struct {
	evaluationService evaluation.EvaluationService
}

func NewEvaluationHandler(evaluationService evaluation.EvaluationService) EvaluationHandler {
	return &EvaluationHandlerImpl{evaluationService: evaluationService}
}

// Submit implements EvaluationHandler.
func (h *EvaluationHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req evaluation.SubmitEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit evaluation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.evaluationService.Submit(r.Context(), middleware.UserID(r), req)
	if err != nil {
		slog.Error("Submit evaluation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Evaluation submitted", created)
}

// List implements EvaluationHandler.
func (h *EvaluationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := evaluationFilterFromQuery(r)
	filter.UserID = r.URL.Query().Get("user_id")

	evals, total, err := h.evaluationService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List evaluations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, evals, listMeta(filter.Page, filter.Limit, total))
}

// ListMine implements EvaluationHandler.
func (h *EvaluationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	filter := evaluationFilterFromQuery(r)
	filter.UserID = middleware.UserID(r)

	evals, total, err := h.evaluationService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List own evaluations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, evals, listMeta(filter.Page, filter.Limit, total))
}

func evaluationFilterFromQuery(r *http.Request) evaluation.ListFilter {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	return evaluation.ListFilter{
		ProgramID: q.Get("program_id"),
		Year:      year,
		Page:      page,
		Limit:     limit,
	}
}
