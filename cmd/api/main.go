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

	"github.com/cmlabs-hris/attendance-client/internal/config"
	"github.com/cmlabs-hris/attendance-client/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-client/internal/domain/checkin"
	appHTTP "github.com/cmlabs-hris/attendance-client/internal/handler/http"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-client/internal/repository/upstream"
	attendanceService "github.com/cmlabs-hris/attendance-client/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/attendance-client/internal/service/auth"
	checkinService "github.com/cmlabs-hris/attendance-client/internal/service/checkin"
	"github.com/go-chi/httplog/v3"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.App.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-client"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := upstream.NewClient(cfg.Upstream.URL, cfg.Upstream.Timeout)
	if err != nil {
		slog.Error("Failed to create upstream client", "error", err)
		os.Exit(1)
	}
	attendanceRepo := upstream.NewAttendanceRepository(client)
	authRepo := upstream.NewAuthRepository(client)

	evaluator, err := checkin.NewEvaluator(checkin.DefaultWindowConfig(), cfg.App.Location)
	if err != nil {
		slog.Error("Invalid check-in window config", "error", err)
		os.Exit(1)
	}
	classifier := attendance.NewClassifier(cfg.App.Location, attendance.DefaultLatePolicy)

	var office *attendance.Location
	if cfg.Office.Set {
		office = &attendance.Location{Latitude: cfg.Office.Latitude, Longitude: cfg.Office.Longitude}
	}

	hub := sse.NewHub()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := serviceAuth.NewAuthService(authRepo, JWTService)
	checkinSvc := checkinService.NewCheckInService(evaluator, attendanceRepo, authRepo, hub, office)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, authRepo, classifier)

	scheduler := cron.NewScheduler(ctx, logger)
	checkinSvc.RegisterJobs(scheduler)
	scheduler.Start()

	router := appHTTP.NewRouter(cfg.App, logger, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authSvc),
		CheckIn:    appHTTP.NewCheckInHandler(checkinSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Dashboard:  appHTTP.NewDashboardHandler(attendanceSvc),
		Report:     appHTTP.NewReportHandler(attendanceSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "upstream", cfg.Upstream.URL, "timezone", cfg.App.Timezone)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	scheduler.Stop()
	slog.Info("Server stopped")
}
