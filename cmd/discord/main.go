package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"server-warden/internal/command"
	"server-warden/internal/config"
	"server-warden/internal/discord"
	"server-warden/internal/middleware"
	"server-warden/internal/storage"
	"server-warden/internal/version"
	"server-warden/pkg/cmd"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(cfg.ParseLevel())

	log := logrus.WithField("component", "main")
	log.WithFields(logrus.Fields{
		"version": version.Version,
		"commit":  version.Commit,
	}).Infof("starting %s", version.AppName)

	// A corrupt warning file is fatal: refusing to start beats running
	// with silently dropped moderation history.
	warnings, err := storage.NewWarningStore(cfg.WarningsPath)
	if err != nil {
		log.WithError(err).Fatal("failed to open warning store")
	}
	defer warnings.Close()

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.WithError(err).Fatal("failed to open guild store")
	}
	defer store.Close()

	registry := cmd.NewRegistry()
	command.RegisterAll(registry,
		middleware.WithGuildOnly(),
		middleware.WithUserPermissionCheck(),
		middleware.WithCommandLogger(),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- discord.StartBot(ctx, cfg, registry, store, warnings)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Infof("received signal %s, shutting down", s)
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.WithError(err).Error("discord bot error")
		}
		cancel()
	}

	log.Info("discord bot exited cleanly")
}
