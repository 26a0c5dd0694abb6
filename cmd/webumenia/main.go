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
	"golang.org/x/text/language"

	"github.com/theemack/webumenia.sk/internal/config"
	"github.com/theemack/webumenia.sk/internal/engine"
	esengine "github.com/theemack/webumenia.sk/internal/engine/es"
	"github.com/theemack/webumenia.sk/internal/locale"
	logpkg "github.com/theemack/webumenia.sk/internal/logger"
	"github.com/theemack/webumenia.sk/internal/metrics"
	"github.com/theemack/webumenia.sk/internal/names"
	"github.com/theemack/webumenia.sk/internal/repository/items"
	"github.com/theemack/webumenia.sk/internal/repository/rescache"
	redisstore "github.com/theemack/webumenia.sk/internal/store/redis"
	chiTransport "github.com/theemack/webumenia.sk/internal/transport/chi"
	healthuc "github.com/theemack/webumenia.sk/internal/usecase/health"
	searchuc "github.com/theemack/webumenia.sk/internal/usecase/search"
	"github.com/theemack/webumenia.sk/internal/version"
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

	logger.Info("Starting webumenia search API",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("engine_addr", cfg.Engine.Addr),
		zap.String("index", cfg.Search.Index),
		zap.Strings("locales", cfg.Search.Locales),
	)

	// Search engine client
	esClient, err := esengine.NewClient(esengine.Config{
		Addr:     cfg.Engine.Addr,
		Username: cfg.Engine.Username,
		Password: cfg.Engine.Password,
		Timeout:  time.Duration(cfg.Engine.TimeoutSec) * time.Second,
	})
	if err != nil {
		logger.Fatal("Failed to create engine client", zap.Error(err))
	}
	defer esClient.Close()

	ctx := context.Background()
	if err := esClient.WaitForReady(ctx, time.Duration(cfg.Engine.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Engine not ready", zap.Error(err))
	}
	logger.Info("Connected to search engine")

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Optional response cache in front of the engine's search path. Document
	// fetches stay uncached.
	searcher := engine.Searcher(esClient)
	var cachePinger healthuc.CachePinger
	if cfg.Cache.Enabled {
		cacheStore, err := redisstore.NewStore(redisstore.Config{
			Addrs:    cfg.Cache.Addrs,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer cacheStore.Close()

		if err := cacheStore.WaitForReady(ctx, time.Duration(cfg.Engine.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Cache not ready", zap.Error(err))
		}

		ttl := time.Duration(cfg.Cache.TTLSec) * time.Second
		searcher = rescache.New(esClient, cacheStore, ttl, metrics.SearchCacheTotal, logger)
		cachePinger = cacheStore
		logger.Info("Response cache enabled",
			zap.Strings("cache_addrs", cfg.Cache.Addrs),
			zap.Duration("ttl", ttl),
		)
	}

	// Locale resolution and author-name display formatting
	resolver, err := locale.NewResolver(cfg.Search.DefaultLocale, cfg.Search.Locales)
	if err != nil {
		logger.Fatal("Failed to create locale resolver", zap.Error(err))
	}
	formatter := names.NewFormatter(language.Make(cfg.Search.DefaultLocale))

	// Repository and use case services
	repo := items.New(searchEngine{Searcher: searcher, Getter: esClient}, formatter)
	searchSvc := searchuc.New(repo, resolver, searchuc.Config{
		BaseIndex:       cfg.Search.Index,
		DefaultPageSize: cfg.Search.DefaultPageSize,
		MaxPageSize:     cfg.Search.MaxPageSize,
		FacetAttrs:      cfg.Search.FacetAttributes,
		FacetSize:       cfg.Search.FacetSize,
	})
	healthSvc := healthuc.New(esClient, cachePinger)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, healthSvc, logger)

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

// searchEngine pairs the (possibly cached) search path with the direct
// document fetch path behind the repository's engine dependency.
type searchEngine struct {
	engine.Searcher
	engine.Getter
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

			// Canonical log line — one line per request
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
