package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xavierca1/smartlead-bridge/internal/config"
	"github.com/xavierca1/smartlead-bridge/internal/entity"
	"github.com/xavierca1/smartlead-bridge/internal/infra/database"
	"github.com/xavierca1/smartlead-bridge/internal/infra/http/handlers"
	metrics "github.com/xavierca1/smartlead-bridge/internal/infra/http/middleware"
	"github.com/xavierca1/smartlead-bridge/internal/infra/integration/smartlead"
	"github.com/xavierca1/smartlead-bridge/internal/infra/logger"
	"github.com/xavierca1/smartlead-bridge/internal/infra/mail"
	"github.com/xavierca1/smartlead-bridge/internal/infra/queue"
	"github.com/xavierca1/smartlead-bridge/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logr, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logr.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Credential storage
	var (
		db           *sql.DB
		settingsRepo entity.SettingsRepositoryInterface
	)
	if cfg.DatabaseURL != "" {
		db, err = database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			logr.Fatal("database connection failed", zap.Error(err))
		}
		defer db.Close()
		if err := database.Migrate(ctx, db); err != nil {
			logr.Fatal("database migration failed", zap.Error(err))
		}
		settingsRepo = database.NewSettingsRepository(db)
	} else {
		logr.Info("DATABASE_URL not set, keeping the api key in memory")
		settingsRepo = database.NewMemorySettingsRepository(cfg.Smartlead.APIKey)
	}

	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	if cfg.Smartlead.APIKey != "" && db != nil {
		if _, _, err := settingsUC.APIKey(ctx, ""); errors.Is(err, usecase.ErrMissingAPIKey) {
			if err := settingsUC.SaveAPIKey(ctx, cfg.Smartlead.APIKey); err != nil {
				logr.Warn("seeding api key failed", zap.Error(err))
			}
		}
	}

	// 2. Gateways
	client := smartlead.NewClient(cfg.Smartlead.BaseURL, cfg.Smartlead.Timeout)
	recorder := metrics.PromRecorder{}

	var (
		rabbit   *queue.RabbitMQ
		producer usecase.QueueProducerInterface
	)
	if cfg.AMQPURL != "" {
		rabbit, err = queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			logr.Fatal("rabbitmq connection failed", zap.Error(err))
		}
		defer rabbit.Close()
		producer = queue.NewProducer(rabbit.Ch)
	}

	// 3. Use cases
	resolveLeadUC := usecase.NewResolveLeadUseCase(client, recorder, logr.Named("reconcile"))
	listCampaignsUC := usecase.NewListCampaignsUseCase(client, recorder, logr.Named("campaigns"))
	addLeadUC := usecase.NewAddLeadUseCase(client, producer, recorder, logr.Named("enroll"))

	// 4. Enrollment worker
	if rabbit != nil {
		var notifier queue.Notifier
		if cfg.Mail.Enabled() {
			notifier = mail.NewEmailSender(
				cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.From, cfg.Mail.NotifyTo,
			)
		}
		worker := queue.NewWorker(rabbit.Ch, usecase.NewRefreshLeadUseCase(settingsUC, resolveLeadUC), notifier, logr.Named("worker"))
		go func() {
			if err := worker.Start(ctx, queue.QueueName); err != nil {
				logr.Error("enrollment worker stopped", zap.Error(err))
			}
		}()
	}

	// 5. Handlers
	var amqpConn *amqp091.Connection
	if rabbit != nil {
		amqpConn = rabbit.Conn
	}
	router := newRouter(routeHandlers{
		Health:   handlers.NewHealthHandler(db, amqpConn, client.BaseURL()),
		Leads:    handlers.NewLeadHandler(resolveLeadUC, addLeadUC, settingsUC),
		Campaign: handlers.NewCampaignHandler(listCampaignsUC, settingsUC),
		Settings: handlers.NewSettingsHandler(settingsUC),
	}, cfg.CORSOrigins, cfg.EnrollPerMinute)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logr.Info("smartlead bridge listening", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logr.Fatal("http server failed", zap.Error(err))
	}
}
