package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"academy/internal/cache"
	intconfig "academy/internal/config"
	router "academy/internal/http"
	"academy/internal/http/handlers"
	"academy/internal/repositories"
	"academy/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.With().Str("service", "academy").Logger()

	cfg, err := intconfig.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := intconfig.OpenDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	defer db.Close()

	// Redis is optional: without it the catalog simply skips caching.
	var catalogCache *cache.CatalogCache
	if cfg.RedisAddr != "" {
		catalogCache = &cache.CatalogCache{
			RDB: redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}),
			TTL: cfg.CacheTTL(),
		}
	}

	matcher := repositories.SearchMatcher{Threshold: cfg.SimilarityThreshold}
	catalogRepo := repositories.CatalogRepository{DB: db, Matcher: matcher}
	categoryRepo := repositories.CategoryRepository{DB: db}
	courseRepo := repositories.CourseRepository{DB: db}
	reviewRepo := repositories.ReviewRepository{DB: db}
	enrollmentRepo := repositories.EnrollmentRepository{DB: db}

	tags := services.TagRules{
		BestsellerMin: cfg.BestsellerMinEnrollments,
		NewWindow:     cfg.NewWindow(),
	}
	categorySvc := services.CategoryService{Store: categoryRepo}
	catalogSvc := services.CatalogService{
		Store:      catalogRepo,
		Categories: categorySvc,
		Cache:      catalogCache,
		Tags:       tags,
	}
	courseSvc := services.CourseService{
		Courses:     courseRepo,
		Rails:       catalogRepo,
		Reviews:     reviewRepo,
		Enrollments: enrollmentRepo,
		Tags:        tags,
	}

	r := router.NewRouter(cfg, handlers.Handler{
		Catalog:    catalogSvc,
		Courses:    courseSvc,
		Categories: categorySvc,
		DB:         db,
	})

	srv := &http.Server{
		Addr:              cfg.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.AppAddr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown failed")
	}

	log.Info().Msg("server stopped")
}
