package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/storage"
)

type KickCommand struct{}

func (c *KickCommand) Name() string           { return "kick" }
func (c *KickCommand) Aliases() []string      { return nil }
func (c *KickCommand) Description() string    { return "Kick a member from the server" }
func (c *KickCommand) UserPermissions() int64 { return discordgo.PermissionKickMembers }

func (c *KickCommand) Run(mc *MessageContext) error {
	target, reason, err := mc.requireTarget()
	if err != nil {
		return err
	}

	if err := mc.Gateway.Kick(mc.Event.GuildID, target.ID, reason); err != nil {
		return execErr("kick member", err)
	}

	display := reason
	if display == "" {
		display = storage.DefaultReason
	}
	_, err = mc.Gateway.Send(mc.Event.ChannelID,
		fmt.Sprintf("Kicked %s for: %s", target.Mention(), display))
	return execErr("send kick confirmation", err)
}
