package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/textlens/config"
	"github.com/spacesedan/textlens/internal/api"
	"github.com/spacesedan/textlens/internal/clients"
	"github.com/spacesedan/textlens/internal/enhance"
	"github.com/spacesedan/textlens/internal/logging"
	"github.com/spacesedan/textlens/internal/translate"
)

const shutdownTimeout = 10 * time.Second

func main() {
	env := config.AppEnv()
	config.LoadEnv(env)
	logging.InitLogger()
	if env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := config.GetAPIConfig()

	var translator translate.Translator
	if ai, err := clients.NewOpenAIClient(cfg); err != nil {
		slog.Warn("[API] Translation disabled", slog.String("error", err.Error()))
	} else {
		translator = translate.NewOpenAITranslator(ai)
	}

	var cache api.ResultCache
	if cfg.Valkey.Enabled() {
		vc, err := clients.NewValkeyClient(cfg.Valkey)
		if err != nil {
			slog.Warn("[API] Result cache disabled", slog.String("error", err.Error()))
		} else {
			defer vc.Close()
			cache = api.NewValkeyResultCache(vc, cfg.CacheTTL)
		}
	}

	handler := api.NewHandler(translate.NewService(translator), enhance.New(), cache)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("[API] Listening", slog.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[API] Server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Handle graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	<-stopChan

	slog.Info("Shutting down analysis API gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("[API] Shutdown failed", slog.String("error", err.Error()))
	}
}
