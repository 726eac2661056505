// cmd/related-service/main.go
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
	"suggestion-mesh/internal/common/logger"
	"suggestion-mesh/internal/common/observability"
	"suggestion-mesh/internal/ranking"
	"suggestion-mesh/internal/scoring"
	"suggestion-mesh/internal/server"
)

func main() {
	zapLog := logger.New("info", "console")
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting related service...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Reload the logger with the configured level/format.
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log = logger.NewZapAdapter(zapLog)

	obs := observability.New("related")
	defer obs.Shutdown()

	// --- Ranker ---
	rankingCfg := ranking.NewConfigFromApp(cfg)
	strategy := scoring.NewLexical(rankingCfg.NoiseBound, rankingCfg.Bias)
	ranker := ranking.NewRanker(ranking.DefaultCorpus(), strategy)
	handler := ranking.NewHandler(rankingCfg, ranker, log)

	zapLog.Info("Content corpus loaded", zap.Int("items", len(ranker.Corpus())))

	// --- HTTP Server ---
	mux := handler.Routes()
	mux.Handle("GET /metrics", promhttp.Handler())

	chained := server.Chain(mux,
		server.RequestID(),
		server.Recovery(log),
		server.AccessLog("related", log, obs),
	)

	srv := server.New(cfg.Services.Related.Addr(), chained, log)
	go func() {
		if err := srv.Start(); err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping related service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down http server", zap.Error(err))
	}

	zapLog.Info("Related service stopped gracefully")
}
