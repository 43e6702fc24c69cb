package http

import (
	"io"
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// RouterConfig carries the settings the router needs from the process config.
type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	LogLevel       slog.Level
}

func NewRouter(
	cfg RouterConfig,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.With(chiMiddleware.AllowContentType("application/json")).Post("/", employeeHandler.Create)
			r.Get("/", employeeHandler.List)
			r.Get("/{id}", employeeHandler.Get)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(chiMiddleware.AllowContentType("application/json"))
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
			})
			r.Get("/", attendanceHandler.Daily)
			r.Get("/summary", attendanceHandler.Summary)
			r.Get("/stream", attendanceHandler.Stream)
			r.Get("/export", reportHandler.ExportAttendance)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/", payrollHandler.Monthly)
			r.Get("/export", reportHandler.ExportPayroll)
			r.Get("/{employee_id}", payrollHandler.EmployeeSalary)
		})

		r.Route("/exports", func(r chi.Router) {
			r.Get("/", reportHandler.ListExports)
			r.Get("/{name}", reportHandler.DownloadExport)
		})
	})
	return r
}

// NewLogger builds the JSON ECS logger shared by the request logger and the
// package level slog calls.
func NewLogger(out io.Writer, level slog.Level, env, version string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(env != "development")
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-payroll"),
		slog.String("version", version),
		slog.String("env", env),
	)
}
