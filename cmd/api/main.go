package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"socionics-wiki/internal/config"
	"socionics-wiki/internal/dataset"
	"socionics-wiki/internal/db"
	apihttp "socionics-wiki/internal/http"
	"socionics-wiki/internal/metrics"
	"socionics-wiki/internal/repository"
	"socionics-wiki/internal/scraper"
	"socionics-wiki/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	m := metrics.Default()

	ds, err := dataset.Load(cfg.DataDir)
	if err != nil {
		logger.Fatal("load dataset", zap.String("dir", cfg.DataDir), zap.Error(err))
	}

	var scrapeRepo repository.ScrapeRepository
	pool, err := db.NewPool(ctx, cfg)
	switch {
	case errors.Is(err, db.ErrNotConfigured):
		logger.Info("database not configured, scrape history disabled")
	case err != nil:
		logger.Fatal("db connect", zap.Error(err))
	default:
		defer pool.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := db.Ping(ctxPing, pool)
		cancel()
		if err != nil {
			logger.Fatal("db ping", zap.Error(err))
		}
		if err := db.EnsureSchema(ctx, pool); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
		scrapeRepo = repository.NewPgScrapeRepository(pool)
	}

	limiter := service.NewMemoryRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMax)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory rate limiter", zap.Error(err))
		} else {
			limiter = service.NewRedisRateLimiter(logger, redisClient, cfg.RateLimitWindow, cfg.RateLimitMax)
		}
		cancel()
	}

	var jwtSvc *service.JWTService
	if cfg.JWTSecret != "" {
		jwtSvc = service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	} else {
		logger.Warn("jwt secret not configured, admin endpoints disabled")
	}

	fetcher := scraper.NewHTTPFetcher(scraper.HTTPFetcherOptions{
		Timeout:   cfg.ScraperTimeout,
		UserAgent: cfg.ScraperUserAgent,
		Retry:     scraper.RetryPolicy{MaxAttempts: cfg.ScraperMaxAttempts, Backoff: cfg.ScraperBackoff},
		Metrics:   m,
	})
	wikiScraper := scraper.New(logger, fetcher, scraper.Options{
		BaseURL:    cfg.ScraperBaseURL,
		Repository: scrapeRepo,
		Metrics:    m,
	})

	relationSvc := service.NewRelationService(logger, ds, m)
	searchSvc := service.NewSearchService(ds)
	authSvc := service.NewAdminAuthService(logger, cfg.AdminPasswordHash, jwtSvc, nil)
	scrapeSvc := service.NewScrapeService(logger, wikiScraper, scrapeRepo, cfg.DataDir)

	router := apihttp.NewRouter(logger, apihttp.RouterDeps{
		Catalog:  apihttp.NewCatalogHandler(logger, ds, relationSvc),
		Relation: apihttp.NewRelationHandler(logger, relationSvc),
		Search:   apihttp.NewSearchHandler(searchSvc),
		Auth:     apihttp.NewAuthHandler(logger, authSvc),
		Admin:    apihttp.NewAdminHandler(logger, scrapeSvc),
		JWT:      jwtSvc,
		Limiter:  limiter,
		Metrics:  m,
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.Int("types", len(ds.Types())),
		zap.Bool("scrape_history", scrapeRepo != nil),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
	scrapeSvc.Wait()
}
