// Package discord owns the session lifecycle: connect, wire the router to
// message events, set presence on ready, and shut down with the context.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"server-warden/internal/config"
	"server-warden/internal/storage"
	"server-warden/pkg/cmd"
)

const presenceText = "Moderating your server"

// Bot is the running Discord bot.
type Bot struct {
	dg     *discordgo.Session
	cfg    *config.Config
	router *Router
	log    *logrus.Entry
}

// StartBot connects and blocks until ctx is cancelled or the session fails
// to open.
func StartBot(ctx context.Context, cfg *config.Config, registry *cmd.Registry, store *storage.Storage, warnings *storage.WarningStore) error {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	b := &Bot{
		dg:     dg,
		cfg:    cfg,
		router: NewRouter(cfg.CommandPrefix, registry, NewSessionGateway(dg), store, warnings),
		log:    logrus.WithField("component", "discord"),
	}

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	b.log.Info("shutdown signal received, closing session")
	return nil
}

func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildBans |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.WithField("user", r.User.Username).Info("logged in")
	if err := s.UpdateGameStatus(0, presenceText); err != nil {
		b.log.WithError(err).Warn("failed to set presence")
	}
}

// onMessageCreate runs on the goroutine discordgo allocates per event, so
// commands from different channels proceed concurrently.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	b.router.HandleMessage(m, s.State.User.ID)
}
