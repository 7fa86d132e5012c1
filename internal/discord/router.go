package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"server-warden/internal/bot"
	"server-warden/internal/command"
	"server-warden/internal/storage"
	"server-warden/pkg/cmd"
)

// Router turns inbound messages into command invocations. Lookup is
// case-sensitive; messages without the prefix and unregistered names are
// ignored without a reply. Each message is handled to completion on the
// goroutine the session delivers it on, so dispatch is concurrent across
// events while the warning store serializes its own mutations.
type Router struct {
	prefix   string
	registry *cmd.Registry
	gw       bot.Gateway
	store    *storage.Storage
	warnings *storage.WarningStore
	log      *logrus.Entry
}

// NewRouter builds a router over the given registry and stores.
func NewRouter(prefix string, registry *cmd.Registry, gw bot.Gateway, store *storage.Storage, warnings *storage.WarningStore) *Router {
	return &Router{
		prefix:   prefix,
		registry: registry,
		gw:       gw,
		store:    store,
		warnings: warnings,
		log:      logrus.WithField("component", "router"),
	}
}

// HandleMessage dispatches one message event: parse, run, translate. selfID
// is the bot's own user ID, used to drop echoes.
func (r *Router) HandleMessage(m *discordgo.MessageCreate, selfID string) {
	if m.Author == nil || m.Author.Bot || m.Author.ID == selfID {
		return
	}
	if !strings.HasPrefix(m.Content, r.prefix) {
		return
	}

	body := strings.TrimPrefix(m.Content, r.prefix)
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return
	}

	name := fields[0]
	c := r.registry.Get(name)
	if c == nil {
		// Not a command of ours; stay silent.
		return
	}

	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(body), name))
	mc := &command.MessageContext{
		Gateway:  r.gw,
		Storage:  r.store,
		Warnings: r.warnings,
		Event:    m,
		Args:     fields[1:],
		RawArgs:  raw,
	}

	err := c.Run(context.Background(), &cmd.Invocation{Args: mc.Args, Data: mc})
	if err == nil {
		return
	}

	if reply, ok := command.Translate(err); ok {
		if _, serr := r.gw.Send(m.ChannelID, reply); serr != nil {
			r.log.WithError(serr).WithField("command", name).Error("failed to send error reply")
		}
		return
	}

	// Unclassified failures never reach chat.
	r.log.WithError(err).WithFields(logrus.Fields{
		"command":  name,
		"guild_id": m.GuildID,
		"user_id":  m.Author.ID,
	}).Error("command failed")
}
