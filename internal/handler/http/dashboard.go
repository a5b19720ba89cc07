package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/trainhub/training-backend-go/internal/domain/dashboard"
	"github.com/trainhub/training-backend-go/internal/handler/http/middleware"
	"github.com/trainhub/training-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetDepartmentCompliance(w http.ResponseWriter, r *http.Request)
	GetMonthlyTrend(w http.ResponseWriter, r *http.Request)
	GetLeaderboard(w http.ResponseWriter, r *http.Request)
	GetEvaluationSummary(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetDashboard(r.Context(), middleware.UserID(r), yearFromQuery(r))
	if err != nil {
		slog.Error("GetDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetDepartmentCompliance implements DashboardHandler.
func (h *DashboardHandlerImpl) GetDepartmentCompliance(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetDepartmentCompliance(r.Context(), yearFromQuery(r))
	if err != nil {
		slog.Error("GetDepartmentCompliance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetMonthlyTrend implements DashboardHandler.
func (h *DashboardHandlerImpl) GetMonthlyTrend(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetMonthlyTrend(r.Context(), yearFromQuery(r))
	if err != nil {
		slog.Error("GetMonthlyTrend service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetLeaderboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetLeaderboard(r.Context(), middleware.UserID(r), yearFromQuery(r))
	if err != nil {
		slog.Error("GetLeaderboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetEvaluationSummary implements DashboardHandler.
func (h *DashboardHandlerImpl) GetEvaluationSummary(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetEvaluationSummary(r.Context(), yearFromQuery(r))
	if err != nil {
		slog.Error("GetEvaluationSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// yearFromQuery reads the year filter; zero means the current year.
func yearFromQuery(r *http.Request) int {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	return year
}
