// Package middleware provides the cross-cutting wrappers applied to every
// registered command: the permission gate, guild-only enforcement, and the
// command history logger.
package middleware

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/command"
	"server-warden/pkg/cmd"
)

// Authorize reports whether a flattened permission set contains the required
// capability. It is a pure membership test; the gateway has already folded
// role inheritance into memberPerms. Administrator implies everything.
func Authorize(memberPerms, required int64) bool {
	if required == 0 {
		return true
	}
	if memberPerms&discordgo.PermissionAdministrator != 0 {
		return true
	}
	return memberPerms&required == required
}

// WithUserPermissionCheck gates a command on its declared permission
// requirement. On failure it returns ErrPermissionDenied without invoking
// the inner command, leaving the reply to the router's error boundary.
func WithUserPermissionCheck() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			mc, ok := inv.Data.(*command.MessageContext)
			if !ok {
				return c.Run(ctx, inv)
			}

			meta, ok := cmd.Root(c).(command.Meta)
			if !ok {
				return c.Run(ctx, inv)
			}
			required := meta.UserPermissions()
			if required == 0 {
				return c.Run(ctx, inv)
			}

			event := mc.Event
			perms, err := mc.Gateway.MemberPermissions(event.GuildID, event.ChannelID, event.Author.ID)
			if err != nil {
				return fmt.Errorf("resolve member permissions: %w", err)
			}
			if !Authorize(perms, required) {
				return command.ErrPermissionDenied
			}
			return c.Run(ctx, inv)
		})
	}
}
