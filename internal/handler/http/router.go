package http

import (
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	AllowedOrigins []string
	Logger         *slog.Logger
}

func NewRouter(
	cfg RouterConfig,
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/options", employeeHandler.ListOptions)
				r.Post("/import", employeeHandler.Import)
				r.Delete("/{id}", employeeHandler.Delete)
			})

			r.Put("/attendance", attendanceHandler.Mark)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/attendance", reportHandler.GetDailyAttendanceReport)
				r.Get("/attendance/export", reportHandler.ExportDailyAttendanceReport)
			})
		})
	})
	return r
}
