package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bazaar-baba/backend/internal/catalog"
	"github.com/bazaar-baba/backend/internal/config"
	"github.com/bazaar-baba/backend/internal/handlers"
	"github.com/bazaar-baba/backend/internal/orders"
	"github.com/bazaar-baba/backend/internal/seed"
	"github.com/bazaar-baba/backend/internal/storage"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger := log.WithField("component", "api")

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.Connect(ctx, cfg.MongoURI, cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to mongodb")
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logger.WithError(err).Error("closing mongodb connection")
		}
	}()
	logger.WithField("database", cfg.Database).Info("connected to mongodb")

	if err := storage.EnsureIndexes(ctx, db); err != nil {
		logger.WithError(err).Fatal("failed to create indexes")
	}

	products := catalog.NewStore(db)
	orderStore := orders.NewStore(db)

	seed.Run(ctx, products, cfg.ProductsFile)

	r := handlers.NewRouter(handlers.Config{
		Products:       products,
		Orders:         orderStore,
		DB:             db,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("server shutdown")
		}
	}()

	logger.WithField("addr", cfg.Addr()).Info("starting api server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Fatal("server failed")
	}
	logger.Info("api shutdown complete")
}
