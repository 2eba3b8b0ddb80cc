package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/crewdesk/crewdesk-backend-go/internal/config"
	"github.com/crewdesk/crewdesk-backend-go/internal/handler/http/middleware"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/accesscontrol"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth              AuthHandler
	Leave             LeaveHandler
	Dashboard         DashboardHandler
	EmployeeDashboard EmployeeDashboardHandler
	Project           ProjectHandler
	Department        DepartmentHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, acl *accesscontrol.Model, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "crewdesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(httprate.LimitByIP(300, time.Minute))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			// Tighter limit on credential endpoints
			r.Use(httprate.LimitByIP(20, time.Minute))

			r.Post("/login", h.Auth.Login)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", h.Leave.CreateRequest)
				r.Get("/my", h.Leave.GetMyRequests)
				r.Get("/{id}", h.Leave.GetRequest)
				r.Patch("/{id}", h.Leave.TransitionRequest)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", h.Leave.ListRequests)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				// Self-scoped employee view
				r.Route("/employee", func(r chi.Router) {
					r.Get("/stats", h.EmployeeDashboard.GetMyStats)
					r.Get("/weekly-hours", h.EmployeeDashboard.GetMyWeeklyHours)
					r.Get("/{employeeID}/stats", h.EmployeeDashboard.GetStats)
					r.Get("/{employeeID}/weekly-hours", h.EmployeeDashboard.GetWeeklyHours)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/admin/stats", h.Dashboard.GetStats)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.Project.List)
				r.Get("/{id}", h.Project.Get)

				r.With(middleware.RequireGrant(acl, accesscontrol.ResourceProject, accesscontrol.ActionCreate)).
					Post("/", h.Project.Create)
				r.With(middleware.RequireGrant(acl, accesscontrol.ResourceProject, accesscontrol.ActionUpdate)).
					Put("/{id}", h.Project.Update)
				r.With(middleware.RequireGrant(acl, accesscontrol.ResourceProject, accesscontrol.ActionShare)).
					Post("/{id}/share", h.Project.Share)
				r.With(middleware.RequireGrant(acl, accesscontrol.ResourceProject, accesscontrol.ActionDelete)).
					Delete("/{id}", h.Project.Delete)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.List)
				r.Get("/{id}", h.Department.Get)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	return r
}
