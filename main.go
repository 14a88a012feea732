package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pathakanu/foreverly/internal/bot"
	"github.com/pathakanu/foreverly/internal/config"
	"github.com/pathakanu/foreverly/internal/database"
	"github.com/pathakanu/foreverly/internal/metrics"
	"github.com/pathakanu/foreverly/internal/server"
	"github.com/pathakanu/foreverly/internal/twilio"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.New(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	var sender bot.Sender
	if cfg.TwilioEnabled() {
		sender = twilio.New(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioOutgoingNumber, logger)
	} else {
		logger.Warn("twilio credentials missing, replies will only be logged")
		sender = twilio.NewLogSender(logger)
	}

	registry := prometheus.NewRegistry()
	lists := database.NewLists(db)
	reminderBot := bot.New(cfg, bot.Stores{
		Messages: database.NewMessages(db),
		Users:    database.NewUsers(db),
		Lists:    lists,
	}, sender, metrics.New(registry), logger)

	if err := reminderBot.StartScheduler(lists); err != nil {
		logger.Fatal("scheduler start", zap.Error(err))
	}

	validator := twilio.NewValidator(cfg.TwilioAuthToken, cfg.TwilioWebhookURL)
	if validator == nil {
		logger.Warn("TWILIO_WEBHOOK_URL not set, webhook signatures are not checked")
	}

	srv, err := server.New(":"+cfg.Port, reminderBot.Webhook(validator), registry, logger)
	if err != nil {
		logger.Fatal("server init failed", zap.Error(err))
	}

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	waitForShutdown(cfg, srv, reminderBot, logger)
}

// newLogger builds the production logger. An unknown level falls back to info.
func newLogger(level string) (*zap.Logger, error) {
	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		log.Printf("config: invalid LOG_LEVEL %q, defaulting to info: %v", level, err)
		atomic = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = atomic
	return zcfg.Build()
}

func waitForShutdown(cfg *config.Config, srv *server.Server, reminderBot *bot.Bot, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	reminderBot.StopScheduler()
}
