package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wmoldes/roster-backend/internal/config"
	appHTTP "github.com/wmoldes/roster-backend/internal/handler/http"
	"github.com/wmoldes/roster-backend/internal/pkg/clock"
	"github.com/wmoldes/roster-backend/internal/pkg/cron"
	"github.com/wmoldes/roster-backend/internal/pkg/database"
	"github.com/wmoldes/roster-backend/internal/pkg/jwt"
	"github.com/wmoldes/roster-backend/internal/pkg/sse"
	"github.com/wmoldes/roster-backend/internal/repository/postgresql"
	serviceAuth "github.com/wmoldes/roster-backend/internal/service/auth"
	dashboardService "github.com/wmoldes/roster-backend/internal/service/dashboard"
	employeeService "github.com/wmoldes/roster-backend/internal/service/employee"
	exportService "github.com/wmoldes/roster-backend/internal/service/export"
	preferenceService "github.com/wmoldes/roster-backend/internal/service/preference"
	realtimeService "github.com/wmoldes/roster-backend/internal/service/realtime"
	"golang.org/x/sync/errgroup"
)

const (
	listenerRetryDelay = 5 * time.Second
	shutdownTimeout    = 10 * time.Second
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

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{MaxConns: cfg.Database.MaxConns})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	clk := clock.New(loc)

	passwordHash := cfg.Admin.PasswordHash
	if passwordHash == "" {
		slog.Warn("ADMIN_PASSWORD_HASH not set, hashing ADMIN_PASSWORD at startup")
		passwordHash, err = serviceAuth.HashPassword(cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	preferenceRepo := postgresql.NewPreferenceRepository(db)
	txManager := postgresql.NewTxManager(db)
	changeListener := postgresql.NewChangeListener(db.Pool, postgresql.EmployeesChannel, listenerRetryDelay)

	hub := sse.NewHub(8)
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authService := serviceAuth.NewAuthService(JWTService, passwordHash)
	employeeSvc := employeeService.NewEmployeeService(txManager, employeeRepo, clk)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, clk)
	exportSvc := exportService.NewExportService(employeeRepo, clk)
	preferenceSvc := preferenceService.NewPreferenceService(preferenceRepo)
	broadcaster := realtimeService.NewBroadcaster(employeeRepo, hub, clk)

	scheduler := cron.NewScheduler()
	cron.NewRosterJobs(broadcaster, cfg.Snapshot.RefreshInterval).RegisterJobs(scheduler)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			AllowedOrigins: cfg.App.AllowedOrigins,
			Env:            cfg.App.Env,
			LogLevel:       cfg.SlogLevel(),
		},
		JWTService,
		appHTTP.NewAuthHandler(authService),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewStreamHandler(broadcaster, hub),
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewExportHandler(exportSvc),
		appHTTP.NewPreferenceHandler(preferenceSvc),
	)

	g, ctx := errgroup.WithContext(ctx)

	// Request contexts end with ctx so open streams close on shutdown
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g.Go(func() error {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return broadcaster.Run(ctx, changeListener)
	})

	g.Go(func() error {
		return scheduler.Run(ctx)
	})

	return g.Wait()
}
