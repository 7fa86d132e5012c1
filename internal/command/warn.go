package command

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"server-warden/internal/storage"
)

type WarnCommand struct{}

func (c *WarnCommand) Name() string           { return "warn" }
func (c *WarnCommand) Aliases() []string      { return nil }
func (c *WarnCommand) Description() string    { return "Warn a member and record the reason" }
func (c *WarnCommand) UserPermissions() int64 { return discordgo.PermissionKickMembers }

func (c *WarnCommand) Run(mc *MessageContext) error {
	target, reason, err := mc.requireTarget()
	if err != nil {
		return err
	}

	if err := mc.Warnings.Append(target.ID, reason); err != nil {
		if !errors.Is(err, storage.ErrWriteFailed) {
			return err
		}
		// The warning is visible in memory; durability failed. The user
		// still gets a success reply, the operator gets the error.
		logrus.WithField("component", "command").WithError(err).
			WithField("user_id", target.ID).Error("warning not persisted")
	}

	display := reason
	if display == "" {
		display = storage.DefaultReason
	}
	_, err = mc.Gateway.Send(mc.Event.ChannelID,
		fmt.Sprintf("%s, you have been warned for: %s", target.Mention(), display))
	return execErr("send warn confirmation", err)
}
