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

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-backend-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/attendance-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-backend-go/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/attendance-backend-go/internal/service/dashboard"
	employeeDashboardService "github.com/cmlabs-hris/attendance-backend-go/internal/service/employee_dashboard"
	leaveService "github.com/cmlabs-hris/attendance-backend-go/internal/service/leave"
	timelineService "github.com/cmlabs-hris/attendance-backend-go/internal/service/timeline"
	"github.com/go-chi/httplog/v3"
)

type repositories struct {
	attendance attendance.Repository
	employees  employee.EmployeeRepository
	holidays   holiday.HolidayRepository
	leaves     leave.Repository
	settings   policy.SettingsRepository
	tx         database.TxManager
	close      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-cmlabs"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	location, err := cfg.Location()
	if err != nil {
		slog.Error("invalid organization time zone", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg, location)
	if err != nil {
		slog.Error("failed to initialize storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer repos.close()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.employees, repos.settings, location)
	allocator := leaveService.NewAllocator(repos.attendance)
	leaveSvc := leaveService.NewLeaveService(
		repos.leaves,
		repos.attendance,
		repos.employees,
		repos.settings,
		allocator,
		repos.tx,
		location,
	)
	timelineSvc := timelineService.NewTimelineService(
		repos.attendance,
		repos.employees,
		repos.holidays,
		repos.leaves,
		repos.settings,
		timelineService.NewResolver(timelineService.DefaultRules()...),
	)
	dashboardSvc := dashboardService.NewDashboardService(repos.attendance, repos.employees, repos.leaves)
	empDashboardSvc := employeeDashboardService.NewEmployeeDashboardService(timelineSvc, leaveSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Logger: logger, AllowedOrigins: cfg.App.AllowedOrigins},
		JWTService,
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewTimelineHandler(timelineSvc, location),
		appHTTP.NewLeaveHandler(leaveSvc, location),
		appHTTP.NewDashboardHandler(dashboardSvc, location),
		appHTTP.NewEmployeeDashboardHandler(empDashboardSvc, location),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("server running", "addr", server.Addr, "storage", cfg.Storage.Driver, "timezone", location.String())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
	}
}

func openRepositories(ctx context.Context, cfg *config.Config, location *time.Location) (*repositories, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		if cfg.Storage.Seed {
			ids, err := fixtures.Seed(ctx, store, calendar.In(time.Now(), location))
			if err != nil {
				return nil, err
			}
			slog.Info("seeded demo data", "owner_id", ids.OwnerID, "manager_id", ids.ManagerID, "employees", len(ids.EmployeeIDs))
		}
		return &repositories{
			attendance: store.Attendance(),
			employees:  store.Employees(),
			holidays:   store.Holidays(),
			leaves:     store.Leave(),
			settings:   store.Settings(),
			tx:         store,
			close:      func() {},
		}, nil

	default:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return &repositories{
			attendance: postgresql.NewAttendanceRepository(db),
			employees:  postgresql.NewEmployeeRepository(db),
			holidays:   postgresql.NewHolidayRepository(db),
			leaves:     postgresql.NewLeaveRepository(db),
			settings:   postgresql.NewSettingsRepository(db),
			tx:         postgresql.NewTxManager(db),
			close:      db.Close,
		}, nil
	}
}
