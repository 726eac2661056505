// cmd/suggestion-service/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"suggestion-mesh/internal/common/config"
	"suggestion-mesh/internal/common/database"
	httpclient "suggestion-mesh/internal/common/http"
	"suggestion-mesh/internal/common/logger"
	"suggestion-mesh/internal/common/observability"
	"suggestion-mesh/internal/gateway"
	"suggestion-mesh/internal/server"
)

func main() {
	zapLog := logger.New("info", "console")
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting suggestion service...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Reload the logger with the configured level/format.
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log = logger.NewZapAdapter(zapLog)

	obs := observability.New("suggestion")
	defer obs.Shutdown()

	// --- Upstream Clients ---
	gatewayCfg := gateway.NewConfigFromApp(cfg)
	depClient := httpclient.NewClient(gatewayCfg.DependencyTimeout)

	related := gateway.NewRelatedClient(gatewayCfg.RelatedURL, depClient)
	multiagent := gateway.NewMultiagentClient(gatewayCfg.MultiagentURL, depClient)
	aggregator := gateway.NewAggregator(gatewayCfg, related, multiagent, log)

	// --- Response Cache ---
	var cache *gateway.ResponseCache
	if gatewayCfg.CacheEnabled {
		redisClient, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			zapLog.Fatal("redis init failed", zap.Error(err))
		}
		defer redisClient.Close()

		// The cache degrades to misses when Redis is down, so an
		// unreachable instance at boot is a warning, not a failure.
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx); err != nil {
			zapLog.Warn("Redis unreachable, responses will not be cached", zap.Error(err))
		}
		pingCancel()

		cache = gateway.NewResponseCache(redisClient, gatewayCfg.CacheTTL, log)
		zapLog.Info("Response cache enabled", zap.Duration("ttl", gatewayCfg.CacheTTL))
	}

	handler := gateway.NewHandler(gatewayCfg, aggregator, related, multiagent, cache, log)

	// --- HTTP Server ---
	mux := handler.Routes()
	mux.Handle("GET /metrics", promhttp.Handler())

	chained := server.Chain(mux,
		server.RequestID(),
		server.Recovery(log),
		server.AccessLog("suggestion", log, obs),
	)

	srv := server.New(cfg.Services.Suggestion.Addr(), chained, log)
	go func() {
		if err := srv.Start(); err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping suggestion service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down http server", zap.Error(err))
	}

	zapLog.Info("Suggestion service stopped gracefully")
}
