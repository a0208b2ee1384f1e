package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/tabelhq/timesheet-backend-go/internal/config"
	"github.com/tabelhq/timesheet-backend-go/internal/domain/auth"
	"github.com/tabelhq/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authService auth.AuthService,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	timesheetHandler TimesheetHandler,
	reportHandler ReportHandler,
	exportHandler ExportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timesheet-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
	})

	// Admin surface, bearer token with admin role
	r.Route("/admin", func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
		r.Use(middleware.AdminOnly)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Delete("/{emp_id}", employeeHandler.DeleteEmployee)
		})

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", masterHandler.ListDepartments)
			r.Post("/", masterHandler.CreateDepartment)
			r.Delete("/{guid}", masterHandler.DeleteDepartment)
		})

		r.Route("/positions", func(r chi.Router) {
			r.Get("/", masterHandler.ListPositions)
			r.Post("/", masterHandler.CreatePosition)
			r.Delete("/{pos_id}", masterHandler.DeletePosition)
		})

		r.Post("/assign-position", masterHandler.AssignPosition)

		r.Route("/assignments", func(r chi.Router) {
			r.Get("/", masterHandler.ListAssignments)
			r.Delete("/{id}", masterHandler.DeleteAssignment)
		})

		r.Get("/reports/monthly", reportHandler.MonthlyReport)
	})

	// Export surface, basic auth re-verified per request
	r.Route("/export", func(r chi.Router) {
		r.Use(middleware.BasicAuth(authService))

		r.Get("/worklogs", exportHandler.ExportWorklogs)
	})

	r.Route("/timesheet", func(r chi.Router) {
		r.Post("/check-in", timesheetHandler.CheckIn)
		r.Put("/check-out", timesheetHandler.CheckOut)
		r.Get("/emp/{emp_id}/date/{date_work}", timesheetHandler.ListByDate)
		r.Get("/emp/{emp_id}/month/{month}", timesheetHandler.ListByMonth)
		r.Get("/employee/{emp_id}/positions", timesheetHandler.ListEmployeePositions)
	})

	return r
}
