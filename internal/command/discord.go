// Package command implements the bot's prefix commands: moderation actions
// composed from the gateway and the warning store, plus the informative and
// utility commands. Commands are registered through the universal registry
// in pkg/cmd via a Discord adapter.
package command

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/bot"
	"server-warden/internal/storage"
	"server-warden/pkg/cmd"
)

// MessageContext is what the runtime passes when executing a prefix command.
// One context per inbound event; contexts are never shared.
type MessageContext struct {
	Gateway  bot.Gateway
	Storage  *storage.Storage
	Warnings *storage.WarningStore
	Event    *discordgo.MessageCreate
	Args     []string // tokens after the command name
	RawArgs  string   // untokenized remainder after the command name
}

// DiscordCommand is what individual prefix commands implement.
// UserPermissions returns the permission bits the issuer must hold, or 0
// when the command is open to everyone.
type DiscordCommand interface {
	Name() string
	Aliases() []string
	Description() string
	UserPermissions() int64
	Run(ctx *MessageContext) error
}

// Meta is exposed by the adapter so middleware can read the declared
// permission requirement without knowing the concrete command type.
type Meta interface {
	UserPermissions() int64
}

// Adapter adapts a DiscordCommand to cmd.Command so it can live in the
// universal registry and be wrapped by middleware.
type Adapter struct {
	Cmd DiscordCommand
}

func (a *Adapter) Name() string           { return a.Cmd.Name() }
func (a *Adapter) Aliases() []string      { return a.Cmd.Aliases() }
func (a *Adapter) Description() string    { return a.Cmd.Description() }
func (a *Adapter) UserPermissions() int64 { return a.Cmd.UserPermissions() }

func (a *Adapter) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, ok := inv.Data.(*MessageContext)
	if !ok {
		return fmt.Errorf("wrong context type %T", inv.Data)
	}
	return a.Cmd.Run(mc)
}

// Register wraps a Discord command in its adapter, applies middlewares, and
// adds it to the registry.
func Register(r *cmd.Registry, c DiscordCommand, mws ...cmd.Middleware) {
	r.Register(cmd.Apply(&Adapter{Cmd: c}, mws...))
}
