package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"baco/internal/adapters/cli"
	"baco/internal/application"
	"baco/internal/config"
	"baco/internal/infrastructure/api"
	"baco/internal/infrastructure/cache"
	"baco/internal/infrastructure/database"
	"baco/internal/infrastructure/i18n"
	"baco/internal/infrastructure/storage"
	"baco/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	store, err := newNotificationStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("notification store init", zap.String("backend", cfg.Storage), zap.Error(err))
	}

	translator := i18n.NewTranslator(cfg.Locale, logger)
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	records := application.NewRecordStore()
	notifs := application.NewNotificationService(store, logger)
	queries := cache.New()
	refresher := application.NewRefresher(queries)
	session := application.Session{UserID: cfg.UserID, Locale: cfg.Locale}
	feed := cli.NewSessionFeed(translator, cfg.Locale, os.Stdout)
	transitions := application.NewTransitionService(
		client, records, notifs, feed, refresher, translator, session, logger)

	queries.Register(application.EventListKey(), cfg.EventListPoll,
		func(ctx context.Context) (any, error) { return client.ListEvents(ctx) })
	queries.Register(application.CreatorEventsKey(cfg.UserID), cfg.EventListPoll,
		func(ctx context.Context) (any, error) { return client.ListEventsByCreator(ctx, cfg.UserID) })
	queries.Register(application.UserEventsKey(cfg.UserID), cfg.EventListPoll,
		func(ctx context.Context) (any, error) { return client.ListEventsByParticipant(ctx, cfg.UserID) })
	queries.Register(application.NotificationsKey(cfg.UserID), cfg.NotificationPoll,
		func(ctx context.Context) (any, error) { return notifs.Load(ctx, cfg.UserID), nil })

	// Session start: surface what accumulated in the persisted queue while
	// this user was away.
	if unread := notifs.Unread(ctx, cfg.UserID); unread > 0 {
		fmt.Printf("%d unread notification(s) — run `baco notifications`\n", unread)
	}

	h := cli.NewHandler(transitions, notifs, queries, translator, session, cfg.EventDetailPoll, os.Stdout)
	if err := h.Run(ctx, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("BACO_DEBUG") != "" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newNotificationStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (output.NotificationStore, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		if err := database.RunMigrations(cfg.DatabaseURL, "migrations", logger); err != nil {
			return nil, err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return storage.NewPostgresStore(pool), nil
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		return storage.NewRedisStore(client), nil
	default:
		return storage.NewFileStore(cfg.DataDir)
	}
}
