package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	cartapp "github.com/rocketshoes/cart-service/internal/cart/app"
	carthttp "github.com/rocketshoes/cart-service/internal/cart/http"
	"github.com/rocketshoes/cart-service/internal/cart/infra/badgerstore"
	"github.com/rocketshoes/cart-service/internal/cart/infra/cataloghttp"
	"github.com/rocketshoes/cart-service/internal/cart/infra/redisstore"
	"github.com/rocketshoes/cart-service/internal/notify"
	"github.com/rocketshoes/cart-service/pkg/config"
	"github.com/rocketshoes/cart-service/pkg/logger"
	"github.com/rocketshoes/cart-service/pkg/shutdown"
)

type closableStore interface {
	cartapp.Store
	Close() error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service:   "cartd",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("store open failed", slog.Any("err", err), slog.String("backend", cfg.StoreBackend))
		os.Exit(1)
	}
	defer store.Close()

	catalog := cataloghttp.NewClient(cfg.CatalogURL, cfg.CatalogTimeout)
	hub := notify.NewHub(log, cfg.NotifyBuffer)

	svc, err := cartapp.NewService(catalog, catalog, store, hub, log)
	if err != nil {
		log.Error("cart service init failed", slog.Any("err", err))
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", cfg.CartHTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           carthttp.NewServer(svc, hub, log).Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}

func openStore(ctx context.Context, cfg config.Config) (closableStore, error) {
	switch cfg.StoreBackend {
	case "badger":
		return badgerstore.Open(badgerstore.Config{
			Path:       cfg.BadgerPath,
			SyncWrites: true,
		})
	case "redis":
		return redisstore.Open(ctx, cfg.RedisAddr)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
