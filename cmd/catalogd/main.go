package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	catalogapp "github.com/rocketshoes/cart-service/internal/catalog/app"
	cataloghttp "github.com/rocketshoes/cart-service/internal/catalog/http"
	"github.com/rocketshoes/cart-service/internal/catalog/infra/memory"
	"github.com/rocketshoes/cart-service/pkg/config"
	"github.com/rocketshoes/cart-service/pkg/logger"
	"github.com/rocketshoes/cart-service/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service:   "catalogd",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	seed := memory.DefaultSeed()
	if cfg.SeedFile != "" {
		seed, err = memory.LoadSeed(cfg.SeedFile)
		if err != nil {
			log.Error("seed load failed", slog.Any("err", err), slog.String("file", cfg.SeedFile))
			os.Exit(1)
		}
	}

	repo := memory.NewRepo(seed)
	svc := catalogapp.NewService(repo)

	addr := fmt.Sprintf(":%d", cfg.CatalogHTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           cataloghttp.NewServer(svc, log).Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr), slog.Int("products", len(seed)))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
