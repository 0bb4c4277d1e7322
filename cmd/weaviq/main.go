package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/weaviq/internal/config"
	dbRedis "github.com/kailas-cloud/weaviq/internal/db/redis"
	logpkg "github.com/kailas-cloud/weaviq/internal/logger"
	"github.com/kailas-cloud/weaviq/internal/metrics"
	schemarepo "github.com/kailas-cloud/weaviq/internal/repository/schema"
	chiTransport "github.com/kailas-cloud/weaviq/internal/transport/chi"
	openaiEmb "github.com/kailas-cloud/weaviq/internal/transport/openai"
	"github.com/kailas-cloud/weaviq/internal/transport/weaviate"
	collectionuc "github.com/kailas-cloud/weaviq/internal/usecase/collection"
	healthuc "github.com/kailas-cloud/weaviq/internal/usecase/health"
	opsuc "github.com/kailas-cloud/weaviq/internal/usecase/ops"
	queryuc "github.com/kailas-cloud/weaviq/internal/usecase/query"
	templateuc "github.com/kailas-cloud/weaviq/internal/usecase/template"
	"github.com/kailas-cloud/weaviq/internal/version"
)

func main() {
	// Load configuration based on ENV
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

	logger.Info("Starting weaviq API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("weaviate_endpoint", cfg.Weaviate.Endpoint),
	)

	// Register workbench metrics explicitly (no init())
	metrics.RegisterMetrics()

	// Weaviate client
	client := weaviate.NewClient(&weaviate.Config{
		Endpoint: cfg.Weaviate.Endpoint,
		APIKey:   cfg.Weaviate.APIKey,
		Username: cfg.Weaviate.Username,
		Password: cfg.Weaviate.Password,
		Timeout:  time.Duration(cfg.Weaviate.RequestTimeout) * time.Second,
		Logger:   logger,
	})

	// An unreachable instance is not fatal: templates degrade to static
	// generation until Weaviate comes up.
	ctx := context.Background()
	if err := client.WaitForReady(ctx, time.Duration(cfg.Weaviate.ReadinessTimeout)*time.Second); err != nil {
		logger.Warn("Weaviate not ready, starting anyway", zap.Error(err))
	} else {
		logger.Info("Connected to Weaviate")
	}

	// Optional schema cache
	var store *dbRedis.Store
	if len(cfg.Cache.Addrs) > 0 {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, 10*time.Second); err != nil {
			logger.Fatal("Cache not ready", zap.Error(err))
		}
		logger.Info("Connected to schema cache", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	// Schema source: live repo, wrapped in the cache decorator when a cache
	// store is configured.
	schemas := buildSchemaSource(client, store, cfg, logger)

	// Template service, with concept embedding when a provider is configured
	tmplSvc := templateuc.New(schemas, logger)
	if cfg.Embedding.APIKey != "" {
		embedder := openaiEmb.NewEmbedder(&openaiEmb.Config{
			APIKey:     cfg.Embedding.APIKey,
			BaseURL:    cfg.Embedding.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.Dimensions,
			Logger:     logger,
		})
		tmplSvc = tmplSvc.WithEmbedder(embedder)
		logger.Info("Concept embedder enabled", zap.String("model", cfg.Embedding.Model))
	}

	querySvc := queryuc.New(client)
	collSvc := collectionuc.New(schemas)
	opsSvc := opsuc.New(client)

	// Pass nil interface (not typed nil pointer!) if cache is not configured.
	var cachePinger healthuc.CachePinger
	if store != nil {
		cachePinger = store
	}
	healthSvc := healthuc.New(client, cachePinger)

	server := chiTransport.NewServer(tmplSvc, querySvc, collSvc, opsSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

// buildSchemaSource assembles the schema fetch chain: live repo, optionally
// wrapped in the redis-backed cache decorator.
func buildSchemaSource(
	client *weaviate.Client,
	store *dbRedis.Store,
	cfg config.Config,
	logger *zap.Logger,
) templateuc.SchemaSource {
	repo := schemarepo.New(client)
	if store == nil {
		return repo
	}
	ttl := time.Duration(cfg.Cache.TTLSec) * time.Second
	return schemarepo.NewCached(repo, store, ttl, metrics.SchemaCacheTotal, logger)
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
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

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
