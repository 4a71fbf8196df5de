package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-client/internal/config"
	"github.com/cmlabs-hris/attendance-client/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-client/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	CheckIn    CheckInHandler
	Attendance AttendanceHandler
	Dashboard  DashboardHandler
	Report     ReportHandler
}

func NewRouter(cfg config.AppConfig, logger *slog.Logger, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/admin/login", h.Auth.AdminLogin)
		})

		// Public, so the check-in page can show the window before login
		r.Get("/checkin/options", h.CheckIn.Options)
		r.Get("/checkin/window", h.CheckIn.Window)

		// Requires authentication
		r.Group(func(r chi.Router) {
			// EventSource cannot set headers, so the stream also accepts ?jwt=
			r.Use(jwtauth.Verify(JWTService.JWTAuth(), jwtauth.TokenFromHeader, jwtauth.TokenFromQuery))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/checkin/window/stream", h.CheckIn.Stream)

			// Employee only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireEmployee)
				r.Get("/me", h.Auth.Me)
				r.Post("/checkin", h.CheckIn.CheckIn)
				r.Get("/attendance", h.Attendance.Mine)
				r.Get("/dashboard", h.Dashboard.GetDashboard)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/metrics", h.Dashboard.GetDailyMetrics)
				r.Get("/metrics/export", h.Report.ExportDailyMetrics)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
