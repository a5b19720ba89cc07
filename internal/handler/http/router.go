package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/trainhub/training-backend-go/internal/handler/http/middleware"
	"github.com/trainhub/training-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth              AuthHandler
	Profile           ProfileHandler
	Program           ProgramHandler
	Assignment        AssignmentHandler
	Evaluation        EvaluationHandler
	Proposal          ProposalHandler
	Certificate       CertificateHandler
	Dashboard         DashboardHandler
	EmployeeDashboard EmployeeDashboardHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, frontendURL, env string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "trainhub"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/profiles", func(r chi.Router) {
				r.Get("/me", h.Profile.GetMe)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Profile.List)
					r.Post("/", h.Profile.Create)
					r.Get("/{id}", h.Profile.GetByID)
					r.Put("/{id}", h.Profile.Update)
					r.Post("/{id}/deactivate", h.Profile.Deactivate)
					r.Post("/{id}/reactivate", h.Profile.Reactivate)
					r.Delete("/{id}", h.Profile.Delete)
				})
			})

			r.Route("/programs", func(r chi.Router) {
				r.Get("/", h.Program.List)
				r.Get("/{id}", h.Program.GetByID)
				r.Post("/{programID}/register", h.Assignment.Register)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Program.Create)
					r.Put("/{id}", h.Program.Update)
					r.Delete("/{id}", h.Program.Delete)
				})
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Get("/my", h.Assignment.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Assignment.List)
					r.Post("/", h.Assignment.Assign)
					r.Put("/{id}/status", h.Assignment.UpdateStatus)
					r.Post("/{id}/attendance", h.Assignment.MarkAttendance)
					r.Delete("/{id}", h.Assignment.Delete)
				})
			})

			r.Route("/evaluations", func(r chi.Router) {
				r.Post("/", h.Evaluation.Submit)
				r.Get("/my", h.Evaluation.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Evaluation.List)
				})
			})

			r.Route("/proposals", func(r chi.Router) {
				r.Post("/", h.Proposal.Submit)
				r.Get("/my", h.Proposal.GetMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Proposal.ListByYear)
					r.Post("/{id}/entertain", h.Proposal.Entertain)
				})
			})

			r.Route("/certificates", func(r chi.Router) {
				r.Post("/", h.Certificate.Upload)
				r.Get("/my", h.Certificate.ListMine)
				r.Delete("/{id}", h.Certificate.Delete)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Certificate.List)
				})
			})

			r.Route("/employee-dashboard", func(r chi.Router) {
				r.Get("/", h.EmployeeDashboard.GetDashboard)
				r.Get("/overdue-evaluations", h.EmployeeDashboard.GetOverdueEvaluations)
			})

			// Admin only
			r.Route("/dashboard", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Dashboard.GetDashboard)
				r.Get("/department-compliance", h.Dashboard.GetDepartmentCompliance)
				r.Get("/monthly-trend", h.Dashboard.GetMonthlyTrend)
				r.Get("/leaderboard", h.Dashboard.GetLeaderboard)
				r.Get("/evaluation-summary", h.Dashboard.GetEvaluationSummary)
			})
		})
	})
	return r
}
