package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bloghive/bloglist-api/internal/api"
	"github.com/bloghive/bloglist-api/internal/core/service"
	"github.com/bloghive/bloglist-api/internal/infrastructure/config"
	mongodb "github.com/bloghive/bloglist-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bloghive/bloglist-api/internal/infrastructure/db/redis"
	"github.com/bloghive/bloglist-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	blogRepo := mongodb.NewBlogRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	blogService := service.NewBlogService(blogRepo, userRepo, log)
	userService := service.NewUserService(userRepo, log)
	resolver := redisdb.NewUserCache(rdb, userRepo, cfg.Redis.UserCacheTTL, log)

	e := api.NewRouter(api.Dependencies{
		Blogs:    blogService,
		Users:    userService,
		Auth:     authService,
		Resolver: resolver,
		Logger:   log,
		Mongo:    db,
		Redis:    rdb,
		Metrics:  true,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
