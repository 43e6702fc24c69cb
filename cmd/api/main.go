package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/config"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/report"
	"github.com/cmlabs-hris/attendance-payroll/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/attendance-payroll/internal/handler/http"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/storage"
	"github.com/cmlabs-hris/attendance-payroll/internal/repository/localstore"
	"github.com/cmlabs-hris/attendance-payroll/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-payroll/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/attendance-payroll/internal/service/employee"
	payrollService "github.com/cmlabs-hris/attendance-payroll/internal/service/payroll"
	reportService "github.com/cmlabs-hris/attendance-payroll/internal/service/report"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg.SlogLevel(), cfg.App.Env, version)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func openRepositories(ctx context.Context, cfg *config.Config) (employee.EmployeeRepository, attendance.AttendanceRepository, func(), error) {
	switch cfg.Store.Type {
	case config.StorePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := postgresql.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return postgresql.NewEmployeeRepository(db), postgresql.NewAttendanceRepository(db), db.Close, nil

	case config.StoreMemory:
		store := localstore.NewMemory()
		return localstore.NewEmployeeRepository(store), localstore.NewAttendanceRepository(store), func() {}, nil

	default:
		store, err := localstore.Open(cfg.Store.DataFile)
		if err != nil {
			return nil, nil, nil, err
		}
		return localstore.NewEmployeeRepository(store), localstore.NewAttendanceRepository(store), func() {}, nil
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clk := clock.NewSystem(cfg.App.Timezone)

	employeeRepo, attendanceRepo, closeStore, err := openRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, clk)
	hub := sse.NewHub()
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, clk, hub)
	calculator := payrollService.NewCalculator(payroll.Policy{
		LatenessRate: cfg.Payroll.LatenessRate,
		WorkWeek:     cfg.Payroll.WorkWeek,
	})
	payrollSvc := payrollService.NewPayrollService(attendanceRepo, employeeRepo, calculator)
	reportSvc := reportService.NewReportService(
		attendanceSvc,
		payrollSvc,
		reportService.NewFormatter(report.LabelsFor(cfg.Report.Locale)),
	)

	if cfg.App.SeedSampleData {
		if _, err := employeeSvc.SeedIfEmpty(ctx, fixtures.SampleEmployees()); err != nil {
			return err
		}
	}

	var exports storage.FileStorage
	if cfg.Report.ExportDir != "" {
		local, err := storage.NewLocalStorage(cfg.Report.ExportDir)
		if err != nil {
			return err
		}
		exports = local
	}

	if cfg.Report.ScheduleEnabled && exports != nil {
		scheduler := cron.NewScheduler()
		cron.NewExportJobs(reportSvc, exports, clk).RegisterJobs(scheduler)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Logger:         logger,
			AllowedOrigins: cfg.App.CORSAllowedOrigins,
			LogLevel:       cfg.SlogLevel(),
		},
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc, hub),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewReportHandler(reportSvc, attendanceSvc.Today, exports),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "store", cfg.Store.Type, "timezone", clk.Location.String())
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	slog.Info("Shutting down server")
	return server.Shutdown(shutdownCtx)
}
