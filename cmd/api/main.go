package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	natsadapter "upload-relay/internal/adapters/eventbroker/nats"
	"upload-relay/internal/adapters/handlers/http/chi"
	authhandler "upload-relay/internal/adapters/handlers/http/chi/v1/auth"
	uploadhandler "upload-relay/internal/adapters/handlers/http/chi/v1/upload"
	webhookhandler "upload-relay/internal/adapters/handlers/http/chi/v1/webhook"
	webhookclient "upload-relay/internal/adapters/notifier/webhook"
	"upload-relay/internal/adapters/repository/postgres"
	"upload-relay/internal/adapters/storage"
	"upload-relay/internal/config"
	"upload-relay/internal/core/port"
	"upload-relay/internal/core/service/auth"
	"upload-relay/internal/core/service/upload"
	"upload-relay/internal/core/service/webhook"
	"upload-relay/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, logCloser, err := logging.New(cfg.Log, os.Stdout)
	if err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("failed to init logger", "error", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	if err := run(ctx, stop, cfg, logger); err != nil {
		logger.Error("app stopped with error", "error", err)
		logCloser.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, stop context.CancelFunc, cfg *config.Config, logger *slog.Logger) error {
	//storage
	store, err := storage.New(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("failed to init object store: %w", err)
	}
	logger.Info("object store ready", "driver", cfg.Storage.Driver, "bucket", cfg.Storage.BucketName)

	notifier := webhookclient.NewClient(cfg.Webhook, logger)

	//optional upload event publisher
	var events port.EventPublisher
	if cfg.NATS.Enabled() {
		publisher, err := natsadapter.NewNATSPublisher(ctx, cfg.NATS, logger)
		if err != nil {
			return fmt.Errorf("failed to init NATS publisher: %w", err)
		}
		defer closeQuietly(publisher, "NATS publisher", logger)
		events = publisher
		logger.Info("upload events enabled", "stream", cfg.NATS.StreamName, "subject", cfg.NATS.Subject)
	}

	//optional upload history
	var history port.UploadRepository
	if cfg.Database.Enabled() {
		db, err := initDB(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to init database: %w", err)
		}
		defer closeQuietly(db, "database", logger)
		history = postgres.NewSqlUploadRepository(db)
		logger.Info("db connection established")
	}

	//services
	authService := auth.NewAuthService(cfg.Auth)
	uploadService := upload.NewUploadService(store, notifier, events, history, cfg.Upload, logger)
	webhookService := webhook.NewWebhookService(notifier, logger)

	//http
	authHandler := authhandler.NewAuthHandlerV1(authService, cfg.Auth, logger)
	uploadHandler := uploadhandler.NewUploadHandlerV1(uploadService, cfg.Upload.MaxSize, logger)
	webhookHandler := webhookhandler.NewWebhookHandlerV1(webhookService, logger)

	router := chi.NewRouter(logger, authHandler, uploadHandler, webhookHandler, cfg.Env.Env, cfg.Upload.MaxSize)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")
	return nil
}

func initDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return postgres.Open(ctx, cfg)
}

func closeQuietly(c io.Closer, name string, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("failed to close "+name, "error", err)
	}
}
