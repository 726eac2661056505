// cmd/multiagent-service/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"suggestion-mesh/internal/agents"
	"suggestion-mesh/internal/common/config"
	"suggestion-mesh/internal/common/logger"
	"suggestion-mesh/internal/common/observability"
	"suggestion-mesh/internal/server"
)

func main() {
	zapLog := logger.New("info", "console")
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting multiagent service...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Reload the logger with the configured level/format.
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log = logger.NewZapAdapter(zapLog)

	obs := observability.New("multiagent")
	defer obs.Shutdown()

	// --- Dispatcher ---
	agentsCfg := agents.NewConfigFromApp(cfg)

	var pool *ants.Pool
	if agentsCfg.MaxConcurrentUnits > 0 {
		pool, err = ants.NewPool(agentsCfg.MaxConcurrentUnits)
		if err != nil {
			zapLog.Fatal("worker pool init failed", zap.Error(err))
		}
		defer pool.Release()
		zapLog.Info("Bounded worker pool enabled",
			zap.Int("maxConcurrentUnits", agentsCfg.MaxConcurrentUnits))
	}

	dispatcher := agents.NewDispatcher(agentsCfg, agents.DefaultProfiles(), pool, log)
	handler := agents.NewHandler(agentsCfg, dispatcher, agents.StaticSummarizer{}, log)

	// --- HTTP Server ---
	mux := handler.Routes()
	mux.Handle("GET /metrics", promhttp.Handler())

	chained := server.Chain(mux,
		server.RequestID(),
		server.Recovery(log),
		server.AccessLog("multiagent", log, obs),
	)

	srv := server.New(cfg.Services.Multiagent.Addr(), chained, log)
	go func() {
		if err := srv.Start(); err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping multiagent service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down http server", zap.Error(err))
	}

	zapLog.Info("Multiagent service stopped gracefully")
}
