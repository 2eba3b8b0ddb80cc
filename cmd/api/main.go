package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/crewdesk/crewdesk-backend-go/internal/config"
	appHTTP "github.com/crewdesk/crewdesk-backend-go/internal/handler/http"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/accesscontrol"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/database"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/jwt"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/oauth"
	"github.com/crewdesk/crewdesk-backend-go/internal/repository/postgresql"
	authService "github.com/crewdesk/crewdesk-backend-go/internal/service/auth"
	dashboardService "github.com/crewdesk/crewdesk-backend-go/internal/service/dashboard"
	employeeDashboardService "github.com/crewdesk/crewdesk-backend-go/internal/service/employee_dashboard"
	leaveService "github.com/crewdesk/crewdesk-backend-go/internal/service/leave"
	projectService "github.com/crewdesk/crewdesk-backend-go/internal/service/project"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	// The grant table is validated up front; a bad entry is a deploy bug and
	// the process must not serve with it.
	acl, err := accesscontrol.Default()
	if err != nil {
		log.Fatal("Error building access control model: ", err)
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	authSvc := authService.NewAuthService(userRepo, jwtService, googleService)
	leaveSvc := leaveService.NewRequestService(acl, leaveRequestRepo)
	dashboardSvc := dashboardService.NewDashboardService(leaveRequestRepo, attendanceRepo, departmentRepo, projectRepo, logger)
	employeeDashboardSvc := employeeDashboardService.NewEmployeeDashboardService(leaveRequestRepo, attendanceRepo)
	projectSvc := projectService.NewProjectService(acl, projectRepo)

	handlers := appHTTP.Handlers{
		Auth:              appHTTP.NewAuthHandler(authSvc, jwtService, googleService),
		Leave:             appHTTP.NewLeaveHandler(leaveSvc),
		Dashboard:         appHTTP.NewDashboardHandler(dashboardSvc),
		EmployeeDashboard: appHTTP.NewEmployeeDashboardHandler(employeeDashboardSvc),
		Project:           appHTTP.NewProjectHandler(projectSvc),
		Department:        appHTTP.NewDepartmentHandler(departmentRepo),
	}

	router := appHTTP.NewRouter(cfg, jwtService, acl, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
