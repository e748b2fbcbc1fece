package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"car-rental/config"
	httpLayer "car-rental/http"
	"car-rental/repository"
	"car-rental/service"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	carRepo, err := repository.NewJSONCarRepository(cfg.CarsDatabase)
	if err != nil {
		logger.Fatal("failed to load car catalog",
			zap.String("path", cfg.CarsDatabase),
			zap.Error(err),
		)
	}

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.QuoteCacheTTL)
		defer redisCache.Close()
		cache = redisCache
		logger.Info("using redis quote cache", zap.String("addr", cfg.RedisAddr))
	} else {
		cache = repository.NewMemoryCache()
	}

	locale := service.PtBR()
	pricing := service.NewPricingService(service.DefaultTaxBrackets(), locale, cache, logger)
	carService := service.NewCarService(carRepo, pricing, locale, logger)
	carHandler := httpLayer.NewCarHandler(carService, logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/available-car",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(carHandler.AvailableCar),
		),
	)

	mux.Handle(
		"/final-amount",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(carHandler.FinalAmount),
		),
	)

	mux.Handle(
		"/transaction-receipt",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(carHandler.TransactionReceipt),
		),
	)

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", cfg.ServerAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("error starting server", zap.Error(err))
		return
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
