package http

import (
	"log/slog"
	"net/http"

	"github.com/trainhub/training-backend-go/internal/domain/employee_dashboard"
	"github.com/trainhub/training-backend-go/internal/handler/http/middleware"
	"github.com/trainhub/training-backend-go/internal/handler/http/response"
)

type EmployeeDashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetOverdueEvaluations(w http.ResponseWriter, r *http.Request)
}

type EmployeeDashboardHandlerImpl struct {
	service employee_dashboard.EmployeeDashboardService
}

func NewEmployeeDashboardHandler(service employee_dashboard.EmployeeDashboardService) EmployeeDashboardHandler {
	return &EmployeeDashboardHandlerImpl{service: service}
}

// GetDashboard implements EmployeeDashboardHandler.
func (h *EmployeeDashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetDashboard(r.Context(), middleware.UserID(r), yearFromQuery(r))
	if err != nil {
		slog.Error("Employee GetDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetOverdueEvaluations implements EmployeeDashboardHandler.
func (h *EmployeeDashboardHandlerImpl) GetOverdueEvaluations(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetOverdueEvaluations(r.Context(), middleware.UserID(r))
	if err != nil {
		slog.Error("GetOverdueEvaluations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
