package middleware

import (
	"context"

	"server-warden/internal/command"
	"server-warden/pkg/cmd"
)

// WithGuildOnly drops command invocations that arrive outside a guild
// (direct messages). Moderation state is per guild, so there is nothing
// meaningful to do and no reply is sent.
func WithGuildOnly() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			if mc, ok := inv.Data.(*command.MessageContext); ok && mc.Event.GuildID == "" {
				return nil
			}
			return c.Run(ctx, inv)
		})
	}
}
