package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"rpg-world/internal/agent"
	"rpg-world/internal/config"
	"rpg-world/internal/engine"
	"rpg-world/internal/network"
	"rpg-world/internal/server"
	"rpg-world/internal/version"
	"rpg-world/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	var seed int64
	// Читаем флаг -seed. По умолчанию 0 (значит взять из конфига или от времени).
	flag.Int64Var(&seed, "seed", 0, "World seed (0 to use RPG_SEED or a random one)")
	autoplay := flag.Bool("bot", false, "Let a bot play the hero")
	botDelay := flag.Duration("bot-delay", 250*time.Millisecond, "Pause between bot moves")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("Invalid configuration")
	}
	logger.InitWith(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	logger.Log.Info("Starting RPG World...")
	logger.Log.Info(version.String())

	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("Using seed: %d", cfg.Seed)
	}

	game, err := engine.NewGame(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to create game")
	}

	hub := network.NewBroadcaster()
	instance := engine.NewInstance(1, game, hub)
	srv := server.New(instance, hub, cfg.Port)

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return instance.Run(ctx) })
	g.Go(func() error { return srv.Run(ctx) })
	if *autoplay {
		bot := agent.NewBot(instance, hub, cfg.Seed)
		bot.Delay = *botDelay
		g.Go(func() error { return bot.Run(ctx) })
	}

	if err := g.Wait(); err != nil {
		logger.Log.WithError(err).Error("Server stopped with error")
		os.Exit(1)
	}

	logger.Log.Info("Done.")
}

