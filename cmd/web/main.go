package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/textlens/config"
	"github.com/spacesedan/textlens/internal/clients"
	"github.com/spacesedan/textlens/internal/controller"
	"github.com/spacesedan/textlens/internal/logging"
	"github.com/spacesedan/textlens/internal/monitoring"
	"github.com/spacesedan/textlens/internal/session"
	"github.com/spacesedan/textlens/internal/web"
)

const shutdownTimeout = 10 * time.Second

func main() {
	env := config.AppEnv()
	config.LoadEnv(env)
	logging.InitLogger()
	if env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := config.GetWebConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store session.Store
	if cfg.Valkey.Enabled() {
		vc, err := clients.NewValkeyClient(cfg.Valkey)
		if err != nil {
			slog.Error("[Web] Failed to connect to valkey", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer vc.Close()
		store = session.NewValkeyStore(vc, cfg.SessionTTL)
	} else {
		memory := session.NewMemoryStore(cfg.SessionTTL)
		go memory.RunSweeper(ctx, time.Minute)
		store = memory
		slog.Info("[Web] Using in-memory session store")
	}

	analysisClient := clients.NewAnalysisClient(cfg.AnalysisAPIURL, cfg.AnalysisTimeout)

	var backendHealthy atomic.Bool
	go monitoring.MonitorBackendHealth(ctx, analysisClient, cfg.HealthcheckInterval, &backendHealthy)

	ctrl := controller.New(analysisClient, store)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           web.NewServer(ctrl, &backendHealthy, cfg.SessionTTL).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("[Web] Listening",
			slog.String("addr", cfg.Addr),
			slog.String("analysis_api", cfg.AnalysisAPIURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Web] Server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Handle graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	<-stopChan

	slog.Info("Shutting down web server gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Web] Shutdown failed", slog.String("error", err.Error()))
	}
}
