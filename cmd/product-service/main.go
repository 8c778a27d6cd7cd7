package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/shop-microservices/internal/config"
	"github.com/example/shop-microservices/internal/logging"
	"github.com/example/shop-microservices/internal/middleware"
	"github.com/example/shop-microservices/internal/postgres"
	"github.com/example/shop-microservices/internal/product"
	"github.com/gin-gonic/gin"
)

func setupRouter(log *slog.Logger, store product.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log))
	product.RegisterRoutes(r, product.Config{Store: store, Log: log})
	return r
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logging.New("product-service")

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "err", err)
		return
	}

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("connect database", "err", err)
		return
	}
	defer pool.Close()

	if err := product.EnsureSchema(ctx, pool); err != nil {
		log.Error("ensure schema", "err", err)
		return
	}

	srv := &http.Server{Addr: cfg.ListenAddr, Handler: setupRouter(log, product.NewPgStore(pool))}
	go func() {
		log.Info("listening", "addr", cfg.ListenAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
}
