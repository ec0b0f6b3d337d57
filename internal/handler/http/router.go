package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	JWTService jwt.Service,
	attendanceHandler AttendanceHandler,
	timelineHandler TimelineHandler,
	leaveHandler LeaveHandler,
	dashboardHandler DashboardHandler,
	employeeDashboardHandler EmployeeDashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				// Employee only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireEmployee)
					r.Post("/check-in", attendanceHandler.CheckIn)
					r.Post("/check-out", attendanceHandler.CheckOut)
				})

				r.Route("/timeline", func(r chi.Router) {
					r.Get("/", timelineHandler.GetRange)
					r.Get("/month", timelineHandler.GetMonth)
				})

				r.Get("/{id}", attendanceHandler.Get)

				// Manager or owner
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", attendanceHandler.Create)
					r.Put("/{id}", attendanceHandler.Update)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/balance", leaveHandler.GetBalance)

				r.Route("/requests", func(r chi.Router) {
					r.Get("/", leaveHandler.ListRequests)
					r.Get("/{id}", leaveHandler.GetRequest)

					r.With(middleware.RequireEmployee).Post("/", leaveHandler.CreateRequest)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/{id}/approve", leaveHandler.ApproveRequest)
						r.Post("/{id}/reject", leaveHandler.RejectRequest)
					})
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/me", employeeDashboardHandler.GetDashboard)
				r.With(middleware.RequireManager).Get("/today", dashboardHandler.GetToday)
			})
		})
	})
	return r
}
