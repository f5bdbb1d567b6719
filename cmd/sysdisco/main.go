package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/sysdisco/internal/config"
	logpkg "github.com/kailas-cloud/sysdisco/internal/logger"
	"github.com/kailas-cloud/sysdisco/internal/metrics"
	"github.com/kailas-cloud/sysdisco/internal/repository/retrying"
	"github.com/kailas-cloud/sysdisco/internal/storage"
	chiTransport "github.com/kailas-cloud/sysdisco/internal/transport/chi"
	gen "github.com/kailas-cloud/sysdisco/internal/transport/generated"
	discoveryuc "github.com/kailas-cloud/sysdisco/internal/usecase/discovery"
	healthuc "github.com/kailas-cloud/sysdisco/internal/usecase/health"
	systemuc "github.com/kailas-cloud/sysdisco/internal/usecase/system"
	"github.com/kailas-cloud/sysdisco/internal/version"
)

func main() {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting sysdisco API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
	)

	ctx := context.Background()
	backend, err := storage.Open(ctx, storage.Config{
		Driver:           cfg.Database.Driver,
		Addrs:            cfg.Database.Addrs,
		Password:         cfg.Database.Password,
		KeyPrefix:        cfg.Storage.KeyPrefix,
		URL:              cfg.Database.URL,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		ReadinessTimeout: time.Duration(cfg.Database.ReadinessTimeout) * time.Second,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer backend.Close()

	// Discovery reads through the retrying lookups; CRUD writes go straight to the store.
	projectLookup, systemLookup := backend.Lookups(retrying.Config{
		Attempts: cfg.Retry.Attempts,
		Delay:    time.Duration(cfg.Retry.DelayMs) * time.Millisecond,
		MaxDelay: time.Duration(cfg.Retry.MaxDelayMs) * time.Millisecond,
	})

	discoveryMetrics := metrics.MustNewDiscovery(prometheus.DefaultRegisterer)
	discoverySvc := discoveryuc.New(projectLookup, systemLookup, discoveryuc.WithObserver(discoveryMetrics))
	systemSvc := systemuc.New(backend.Systems(), projectLookup)
	healthSvc := healthuc.New(backend, backend.Name())

	server := chiTransport.NewServer(discoverySvc, systemSvc, healthSvc, logger)

	r := newRouter(server, cfg.Auth.APIKeys, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// newRouter mounts the API behind the middleware chain.
// Metrics sit in front of auth so rejected requests are counted too.
func newRouter(server gen.ServerInterface, apiKeys []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	r.Use(chiTransport.BearerAuthMiddleware(apiKeys))
	gen.HandlerWithOptions(server, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: chiTransport.InvalidParamHandler,
	})
	return r
}

// jsonRecoverer is a recovery middleware that returns the JSON envelope instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(gen.ErrorResponse{
						Error:     "internal error",
						ErrorCode: gen.ErrorCodeInternalError,
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			ctx, reqLogger := logpkg.WithRequestID(r.Context(), logger, requestID)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
