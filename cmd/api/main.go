package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/trainhub/training-backend-go/internal/config"
	appHTTP "github.com/trainhub/training-backend-go/internal/handler/http"
	"github.com/trainhub/training-backend-go/internal/pkg/cron"
	"github.com/trainhub/training-backend-go/internal/pkg/database"
	"github.com/trainhub/training-backend-go/internal/pkg/jwt"
	"github.com/trainhub/training-backend-go/internal/pkg/storage"
	"github.com/trainhub/training-backend-go/internal/repository/postgresql"
	assignmentService "github.com/trainhub/training-backend-go/internal/service/assignment"
	authService "github.com/trainhub/training-backend-go/internal/service/auth"
	certificateService "github.com/trainhub/training-backend-go/internal/service/certificate"
	"github.com/trainhub/training-backend-go/internal/service/compliance"
	dashboardService "github.com/trainhub/training-backend-go/internal/service/dashboard"
	employeeDashboardService "github.com/trainhub/training-backend-go/internal/service/employee_dashboard"
	evaluationService "github.com/trainhub/training-backend-go/internal/service/evaluation"
	profileService "github.com/trainhub/training-backend-go/internal/service/profile"
	programService "github.com/trainhub/training-backend-go/internal/service/program"
	proposalService "github.com/trainhub/training-backend-go/internal/service/proposal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	profileRepo := postgresql.NewProfileRepository(db)
	programRepo := postgresql.NewProgramRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	evaluationRepo := postgresql.NewEvaluationRepository(db)
	proposalRepo := postgresql.NewProposalRepository(db)
	certificateRepo := postgresql.NewCertificateRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	empDashboardRepo := postgresql.NewEmployeeDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	calculator := compliance.NewCalculator(cfg.Compliance.TargetHours, cfg.Compliance.LeaderboardSize)

	auth := authService.NewAuthService(profileRepo, sessionRepo, jwtService)
	profiles := profileService.NewProfileService(profileRepo)
	programs := programService.NewProgramService(programRepo)
	assignments := assignmentService.NewAssignmentService(assignmentRepo, programRepo, profileRepo)
	evaluations := evaluationService.NewEvaluationService(evaluationRepo, assignmentRepo)
	proposals := proposalService.NewProposalService(proposalRepo)
	certificates := certificateService.NewCertificateService(certificateRepo, assignmentRepo, fileStorage)
	adminDashboard := dashboardService.NewDashboardService(dashboardRepo, calculator)
	employeeDashboard := employeeDashboardService.NewEmployeeDashboardService(empDashboardRepo, dashboardRepo, calculator)

	handlers := appHTTP.Handlers{
		Auth:              appHTTP.NewAuthHandler(jwtService, auth),
		Profile:           appHTTP.NewProfileHandler(profiles),
		Program:           appHTTP.NewProgramHandler(programs),
		Assignment:        appHTTP.NewAssignmentHandler(assignments),
		Evaluation:        appHTTP.NewEvaluationHandler(evaluations),
		Proposal:          appHTTP.NewProposalHandler(proposals),
		Certificate:       appHTTP.NewCertificateHandler(certificates),
		Dashboard:         appHTTP.NewDashboardHandler(adminDashboard),
		EmployeeDashboard: appHTTP.NewEmployeeDashboardHandler(employeeDashboard),
	}

	scheduler := cron.NewScheduler()
	cron.NewProgramJobs(programRepo, sessionRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, handlers, cfg.App.FrontendURL, cfg.App.Env)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
