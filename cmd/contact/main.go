package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/config"
	dbpkg "github.com/BruksfildServices01/dentismart/internal/db"
	"github.com/BruksfildServices01/dentismart/internal/events"
	"github.com/BruksfildServices01/dentismart/internal/lead"
	"github.com/BruksfildServices01/dentismart/internal/logger"
	"github.com/BruksfildServices01/dentismart/internal/middleware"
	"github.com/BruksfildServices01/dentismart/internal/routes"
)

func main() {
	cfg, err := config.LoadContact()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl := logger.Must(cfg.AppEnv)
	defer func() { _ = zl.Sync() }()

	if missing := cfg.Missing(); len(missing) > 0 {
		zl.Warn("missing environment variables", zap.String("vars", strings.Join(missing, ", ")))
	}

	db, err := dbpkg.NewLeadsDB(cfg.DBUrl)
	if err != nil {
		zl.Fatal("database", zap.Error(err))
	}

	// ======================================================
	// LEAD PIPELINE
	// ======================================================
	var analyzer lead.Analyzer
	if cfg.AIAPIKey != "" {
		analyzer = lead.NewOpenAIAnalyzer(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
	}

	var archiver lead.Archiver = lead.NoopArchiver{}
	if cfg.LeadsBucket != "" {
		archiver = lead.NewS3Archiver(cfg.AWSRegion, cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, cfg.LeadsBucket)
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

	leads := lead.NewService(lead.Deps{
		Analyzer:   analyzer,
		Encryptor:  lead.NewFieldEncryptor(cfg.EncryptionKey),
		Store:      lead.NewGormStore(db),
		Archiver:   archiver,
		Mailer:     lead.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.GmailUser, cfg.GmailAppPassword),
		Publisher:  publisher,
		AdminEmail: cfg.AdminEmail,
		Log:        zl,
	})

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(zl))
	routes.RegisterContactRoutes(r, leads, cfg.CORSOrigins, zl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	go func() {
		zl.Info("contact service running", zap.String("addr", cfg.Addr()))
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
}
