package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/redis/go-redis/v9"

	"contacts/internal/config"
	"contacts/internal/database/cache"
	"contacts/internal/database/postgresql"
	"contacts/internal/email/gomail"
	"contacts/internal/email/mockmail"
	"contacts/internal/http/handlers/auth/avatar"
	"contacts/internal/http/middleware/ratelimit"
	"contacts/internal/http/router"
	"contacts/internal/lib/logger/sl"
	"contacts/internal/lib/tokens"
	"contacts/internal/storage/mockstorage"
	"contacts/internal/storage/s3"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	log = log.With(slog.String("env", cfg.Env))

	address := cfg.Server.Host + ":" + strconv.Itoa(cfg.Server.Port)

	log.Info("Starting server", slog.String("Address", address))
	log.Debug("Logger debug mode enabled")

	tokenService, err := tokens.New(cfg.JWT)
	if err != nil {
		log.Error("Failed to initialize token service", sl.Err(err))
		os.Exit(1)
	}

	ctx := context.Background()

	database, err := postgresql.New(ctx, cfg.Database)
	if err != nil {
		log.Error("Failed to initialize database", sl.Err(err))
		os.Exit(1)
	}
	defer database.Close()

	var users router.Users = database
	var limiter ratelimit.Limiter = ratelimit.NewMemory(cfg.RateLimit.Requests, cfg.RateLimit.Window)

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			log.Error("Failed to connect to redis", sl.Err(err))
			os.Exit(1)
		}

		users = cache.New(log, database, client, cfg.Redis.CacheTTL)
		limiter = ratelimit.NewRedis(client, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	var mailer router.Mailer = mockmail.New(cfg.Email, log)
	if cfg.Env == config.EnvProd {
		mailer = gomail.New(cfg.Email)
	}

	var avatars avatar.Uploader = mockstorage.New(cfg.App.BaseURL+"/avatars", log)
	if cfg.Storage.Bucket != "" {
		avatars, err = s3.New(ctx, cfg.Storage)
		if err != nil {
			log.Error("Failed to initialize avatar storage", sl.Err(err))
			os.Exit(1)
		}
	}

	handler := router.New(log, router.Deps{
		Users:         users,
		Contacts:      database,
		Tokens:        tokenService,
		Mailer:        mailer,
		Avatars:       avatars,
		Limiter:       limiter,
		BaseURL:       cfg.App.BaseURL,
		MaxUploadSize: cfg.HTTP.MaxUploadSize,
		CORSOrigins:   cfg.HTTP.CORSOrigins,
		TrustProxy:    cfg.RateLimit.TrustProxy,
	})

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	srv := &http.Server{
		Addr:         address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.Timeout,
		WriteTimeout: cfg.HTTP.Timeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Running error", sl.Err(err))
		}
	}()

	log.Info("Server started")

	<-done
	log.Info("Stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to stop server", sl.Err(err))
		return
	}

	log.Info("Server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout,
			&slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout,
			&slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewTextHandler(os.Stdout,
			&slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return log
}
