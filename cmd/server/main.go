package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cookouthq/cookout-api/internal/api"
	"github.com/cookouthq/cookout-api/internal/core/service"
	"github.com/cookouthq/cookout-api/internal/infrastructure/config"
	mongodb "github.com/cookouthq/cookout-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cookouthq/cookout-api/internal/infrastructure/db/redis"
	"github.com/cookouthq/cookout-api/internal/infrastructure/queue"
	"github.com/cookouthq/cookout-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(shutdownCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Invite delivery pipeline ---
	inviteRepo := mongodb.NewInviteRepository(db)
	deliverer := service.NewInviteDeliverer(inviteRepo, redisdb.NewInviteDedup(rdb), log)
	dispatcher := queue.NewDispatcher(cfg.InviteWorkers, deliverer, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		Mongo:         db,
		Redis:         rdb,
		SessionSecret: cfg.SessionSecret,
		InviteQueue:   dispatcher,
		Log:           log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("cookout api listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserStore(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewEventRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewInviteRepository(db).EnsureIndexes(ctx)
}
