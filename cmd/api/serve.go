package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gestao_cortinas/internal/adapter/http/handlers"
	"gestao_cortinas/internal/adapter/http/routes"
	"gestao_cortinas/internal/adapter/persistence/repository"
	"gestao_cortinas/internal/infrastructure/config"
	"gestao_cortinas/internal/infrastructure/database"
	"gestao_cortinas/internal/infrastructure/logger"
	"gestao_cortinas/internal/infrastructure/metrics"
	"gestao_cortinas/internal/infrastructure/push"
	"gestao_cortinas/internal/infrastructure/realtime"
	"gestao_cortinas/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 10 * time.Second
	pushTimeout     = 3 * time.Second
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{Mode: cfg.LogMode, Level: cfg.LogLevel, Service: "gestao-cortinas"})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return err
	}

	m, err := metrics.New(prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	dispatcherOpts := []usecase.DispatcherOption{usecase.WithFanoutLimit(cfg.NotificationFanoutLimit)}
	if cfg.RedisAddr != "" {
		publisher, err := realtime.NewRedisPublisher(log, cfg.RedisAddr, cfg.RedisChannelPrefix)
		if err != nil {
			return err
		}
		defer publisher.Close()
		dispatcherOpts = append(dispatcherOpts, usecase.WithPublishers(publisher))
	} else {
		log.Warn("[serve] REDIS_ADDR not set, realtime notifications disabled")
	}
	if len(cfg.NotifyPushURLs) > 0 {
		notifier, err := push.NewShoutrrrNotifier(cfg.NotifyPushURLs, pushTimeout)
		if err != nil {
			return err
		}
		dispatcherOpts = append(dispatcherOpts, usecase.WithOpsNotifier(notifier))
	}

	ambienteRepo := repository.NewAmbienteDynamoRepository(ddb, cfg.AmbientesTable)
	obraRepo := repository.NewObraDynamoRepository(ddb, cfg.ObrasTable)
	userRepo := repository.NewUserDynamoRepository(ddb, cfg.UsuariosTable)
	notificationRepo := repository.NewNotificationDynamoRepository(ddb, cfg.NotificacoesTable)
	mountingRepo := repository.NewMountingOptionDynamoRepository(ddb, cfg.MontagensTable)

	dispatcher := usecase.NewNotificationDispatcher(userRepo, obraRepo, notificationRepo, m, log, dispatcherOpts...)
	mountingUC := usecase.NewMountingOptionUseCase(mountingRepo, cfg.CatalogCacheTTL, log)

	router := routes.NewRouter(routes.Handlers{
		Ambiente:     handlers.NewAmbienteHandler(usecase.NewAmbienteUseCase(ambienteRepo, obraRepo, dispatcher, mountingUC, m, log)),
		Obra:         handlers.NewObraHandler(usecase.NewObraUseCase(obraRepo, userRepo, dispatcher, log)),
		User:         handlers.NewUserHandler(usecase.NewUserUseCase(userRepo, log)),
		Notification: handlers.NewNotificationHandler(usecase.NewNotificationUseCase(notificationRepo)),
		Mounting:     handlers.NewMountingOptionHandler(mountingUC),
	}, routes.Options{
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSAllowedOrigins,
		Log:         log,
		Metrics:     m,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[serve] listening", "addr", srv.Addr, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("[serve] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
