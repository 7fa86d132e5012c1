package middleware

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"server-warden/internal/command"
	"server-warden/internal/storage"
	"server-warden/pkg/cmd"
)

// WithCommandLogger records completed commands in the guild's history store.
// Failed runs are not recorded; a history write failure is logged and never
// fails the command.
func WithCommandLogger() cmd.Middleware {
	log := logrus.WithField("component", "middleware")

	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			if err := c.Run(ctx, inv); err != nil {
				return err
			}

			mc, ok := inv.Data.(*command.MessageContext)
			if !ok || mc.Storage == nil || mc.Event.GuildID == "" {
				return nil
			}

			rec := storage.CommandHistoryRecord{
				ChannelID: mc.Event.ChannelID,
				UserID:    mc.Event.Author.ID,
				Username:  mc.Event.Author.Username,
				Command:   c.Name(),
				Param:     mc.RawArgs,
				Datetime:  time.Now(),
			}
			if err := mc.Storage.RecordCommand(mc.Event.GuildID, rec); err != nil {
				log.WithError(err).WithField("command", c.Name()).Warn("failed to record command history")
			}
			return nil
		})
	}
}
