package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/audit"
	"github.com/BruksfildServices01/dentismart/internal/auth"
	"github.com/BruksfildServices01/dentismart/internal/config"
	dbpkg "github.com/BruksfildServices01/dentismart/internal/db"
	"github.com/BruksfildServices01/dentismart/internal/events"
	"github.com/BruksfildServices01/dentismart/internal/infra/lock"
	infraRepo "github.com/BruksfildServices01/dentismart/internal/infra/repository"
	"github.com/BruksfildServices01/dentismart/internal/logger"
	"github.com/BruksfildServices01/dentismart/internal/messaging/sms"
	"github.com/BruksfildServices01/dentismart/internal/middleware"
	"github.com/BruksfildServices01/dentismart/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl := logger.Must(cfg.AppEnv)
	defer func() { _ = zl.Sync() }()

	db, err := dbpkg.NewDB(cfg.DBUrl, cfg.DefaultTimezone, zl)
	if err != nil {
		zl.Fatal("database", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// INFRA
	// ======================================================
	provider := sms.FromCredentials(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
	if !provider.IsConfigured() {
		zl.Warn("sms provider not configured, reminders run in simulation mode")
	}

	var locker lock.Locker = lock.NewMemory()
	if cfg.RedisURL != "" {
		client, err := lock.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			zl.Fatal("redis", zap.Error(err))
		}
		defer client.Close()
		locker = lock.NewRedisLocker(client, "dentismart:", cfg.ReminderLockTTL)
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.RabbitURL != "" {
		pub, err := events.NewAMQPPublisher(cfg.RabbitURL, cfg.EventsExchange)
		if err != nil {
			zl.Fatal("rabbitmq", zap.Error(err))
		}
		defer pub.Close()
		publisher = pub
	}

	clinicRepo := infraRepo.NewClinicGormRepository(db)
	rendezVousRepo := infraRepo.NewRendezVousGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, zl)
	defer auditDispatcher.Close()

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(zl))

	routes.RegisterRoutes(r, routes.Deps{
		Clinic:      clinicRepo,
		Profiles:    clinicRepo,
		RendezVous:  rendezVousRepo,
		Reminders:   rendezVousRepo,
		AuditLogs:   auditLogger,
		Audit:       auditDispatcher,
		Tokens:      auth.NewTokenIssuer(cfg.JWTSecret),
		SMS:         provider,
		Locker:      locker,
		Events:      publisher,
		CORSOrigins: cfg.CORSOrigins,
		Log:         zl,
	})

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
	zl.Info("server stopped")
}
