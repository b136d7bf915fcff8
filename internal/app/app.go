// Package app wires configuration, storage, services, and the HTTP server
// into a runnable process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/atendely/dispatch-backend/internal/adapter/postgres"
	consultantrepo "github.com/atendely/dispatch-backend/internal/adapter/postgres/consultant"
	counterrepo "github.com/atendely/dispatch-backend/internal/adapter/postgres/counter"
	protocolrepo "github.com/atendely/dispatch-backend/internal/adapter/postgres/protocol"
	"github.com/atendely/dispatch-backend/internal/config"
	"github.com/atendely/dispatch-backend/internal/service/dispatch"
	protocolsvc "github.com/atendely/dispatch-backend/internal/service/protocol"
	"github.com/atendely/dispatch-backend/internal/service/registry"
	"github.com/atendely/dispatch-backend/internal/transport/middleware"
	"github.com/atendely/dispatch-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the services and the HTTP server, and blocks until
// the context is cancelled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	consultants := consultantrepo.New(pool)
	counter := counterrepo.New(pool)
	protocols := protocolrepo.New(pool)

	dispatchSvc := dispatch.NewService(logger, txManager, consultants, counter, protocols)
	registrySvc := registry.NewService(logger, consultants)
	protocolSvc := protocolsvc.NewService(logger, txManager, protocols, counter,
		cfg.Protocol.DefaultPageSize, cfg.Protocol.MaxPageSize)

	router := rest.NewRouter(
		rest.NewConsultantHandler(registrySvc, dispatchSvc, logger),
		rest.NewProtocolHandler(protocolSvc, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
		middleware.APIKey(cfg.Auth.APIKey),
	)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      middleware.Chain(mws...)(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
