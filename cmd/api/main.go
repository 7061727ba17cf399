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
	appHTTP "github.com/cmlabs-hris/attendance-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/logger"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/security"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/sqlstore"
	attendanceService "github.com/cmlabs-hris/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/attendance-backend-go/internal/service/auth"
	employeeService "github.com/cmlabs-hris/attendance-backend-go/internal/service/employee"
	reportService "github.com/cmlabs-hris/attendance-backend-go/internal/service/report"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.App, os.Stdout)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	slog.SetDefault(log)

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	employeeRepo := sqlstore.NewEmployeeRepository(db)
	attendanceRepo := sqlstore.NewAttendanceRepository(db)
	reportRepo := sqlstore.NewReportRepository(db)
	adminRepo := sqlstore.NewAdminRepository(db)

	scheme, err := security.NewScheme(cfg.Auth.PasswordScheme)
	if err != nil {
		return err
	}
	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		return err
	}

	authService := serviceAuth.NewAuthService(adminRepo, scheme, JWTService, serviceAuth.DefaultAdmin{
		Username: cfg.Auth.DefaultUsername,
		Password: cfg.Auth.DefaultPassword,
	})
	seeded, err := authService.Bootstrap(context.Background())
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	if seeded {
		slog.Warn("Default admin credential created, change it before exposing the service",
			"username", cfg.Auth.DefaultUsername, "scheme", scheme.Name())
	}

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	reportSvc := reportService.NewReportService(reportRepo)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			Logger:         log,
		},
		JWTService,
		appHTTP.NewAuthHandler(authService),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	server := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", "http://"+server.Addr, "driver", db.Dialect)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func openDatabase(cfg *config.Config) (*database.DB, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		return database.NewPostgreSQLDB(cfg.DatabaseDSN())
	default:
		return database.NewSQLiteDB(cfg.DatabaseDSN())
	}
}
