package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/larriantoniy/ig_user_client/internal/adapters/ig"
	"github.com/larriantoniy/ig_user_client/internal/adapters/sessionstore"
	"github.com/larriantoniy/ig_user_client/internal/config"
	"github.com/larriantoniy/ig_user_client/internal/ports"
	"github.com/larriantoniy/ig_user_client/internal/useCases"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
)

const (
	envDev  = "dev"
	envProd = "prod"
)

// разобраны вместе с --config в config.Load
var (
	sendThread = pflag.String("thread", "", "direct thread id to message from every account")
	sendText   = pflag.String("text", "", "message text for --thread")
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := setupLogger(cfg.Env)

	cfgRepo := config.NewJSONAccountConfigRepo(cfg.BaseDir)
	store, closeStore := setupSessionStore(cfg.Redis, logger)
	defer closeStore()

	factory := func(ac *ports.AccountConfig, l *slog.Logger) (ports.AccountClient, error) {
		return ig.NewClientFromConfig(ac, cfg.API.BaseURL, cfg.API.Timeout, l), nil
	}

	runner := useCases.NewRunner(cfgRepo, store, logger, factory)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	ready, err := runner.StartAll(ctx)
	if err != nil {
		logger.Error("runner.StartAll error", "error", err)
		os.Exit(1)
	}

	for rc := range ready {
		profile, err := rc.Client.CurrentProfile(ctx)
		if err != nil {
			logger.Error("CurrentProfile failed", "account", rc.Name, "error", err)
			continue
		}
		logger.Info("current profile", "account", rc.Name, "profile", string(profile))

		if *sendThread == "" {
			continue
		}
		sender := useCases.NewSender(logger.With("account", rc.Name), rc.Client.Messenger())
		if _, err := sender.SendText(ctx, *sendThread, *sendText); err != nil {
			logger.Error("SendText failed", "account", rc.Name, "thread_id", *sendThread, "error", err)
		}
	}

	logger.Info("all accounts processed, waiting for shutdown signal")
	<-ctx.Done()
	logger.Info("exit")
}

func setupSessionStore(rc config.RedisConfig, logger *slog.Logger) (ports.SessionStore, func()) {
	if rc.Addr == "" {
		logger.Info("redis not configured, sessions kept in memory")
		return sessionstore.NewMemoryStore(), func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})
	return sessionstore.NewRedisStore(rdb, rc.Prefix, rc.TTL), func() { _ = rdb.Close() }
}

func setupLogger(env string) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case envDev:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}

	return logger
}
