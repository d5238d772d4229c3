// Package main is the entry point for the snipbin API server.
package main

import (
	"context"
	"time"

	"github.com/snipbin/snipbin/internal/auth"
	"github.com/snipbin/snipbin/internal/config"
	"github.com/snipbin/snipbin/internal/data"
	"github.com/snipbin/snipbin/internal/http/handler"
	"github.com/snipbin/snipbin/internal/http/router"
	"github.com/snipbin/snipbin/internal/repository/cached"
	"github.com/snipbin/snipbin/internal/repository/postgres"
	"github.com/snipbin/snipbin/internal/service"
	"github.com/snipbin/snipbin/pkg/logger"
)

func main() {
	ctx := context.Background()

	logger.InitLogging()
	config.InitConf()

	if config.Conf.JWTSecret == "" {
		logger.Fatal(ctx, "JWT_SECRET must be set")
	}

	pool, err := data.NewPostgresPool(ctx)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	snippetRepo := postgres.NewSnippetRepository(pool)
	if err := snippetRepo.EnsureSchema(ctx); err != nil {
		logger.Fatal(ctx, "failed to ensure snippet schema: %v", err)
	}
	userRepo := postgres.NewUserRepository(pool)
	if err := userRepo.EnsureSchema(ctx); err != nil {
		logger.Fatal(ctx, "failed to ensure user schema: %v", err)
	}

	redisClient := data.NewRedisClient()
	cacheTTL := time.Duration(config.Conf.CacheTTLSeconds) * time.Second
	cachedSnippets := cached.NewSnippetRepository(snippetRepo, redisClient, cacheTTL)

	tokens := auth.NewTokenManager(
		config.Conf.JWTSecret,
		config.Conf.JWTIssuer,
		time.Duration(config.Conf.AccessTokenTTLMinutes)*time.Minute,
	)

	clock := service.RealClock{}
	snippetSvc := service.NewService(cachedSnippets, clock)
	userSvc := service.NewUserService(userRepo, snippetRepo, tokens, clock)

	r := router.NewRouter(
		handler.NewHandler(snippetSvc),
		handler.NewUserHandler(userSvc),
		handler.NewHealthHandler(pool, redisClient),
		tokens,
	)

	port := config.Conf.Port
	if port == "" {
		logger.Info(ctx, "no port configured, falling back to default: 8080")
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		logger.Fatal(ctx, "failed to start server: %v", err)
	}
}
