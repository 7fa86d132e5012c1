package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/storage"
)

type BanCommand struct{}

func (c *BanCommand) Name() string           { return "ban" }
func (c *BanCommand) Aliases() []string      { return nil }
func (c *BanCommand) Description() string    { return "Ban a member from the server" }
func (c *BanCommand) UserPermissions() int64 { return discordgo.PermissionBanMembers }

func (c *BanCommand) Run(mc *MessageContext) error {
	target, reason, err := mc.requireTarget()
	if err != nil {
		return err
	}

	if err := mc.Gateway.Ban(mc.Event.GuildID, target.ID, reason); err != nil {
		return execErr("ban member", err)
	}

	display := reason
	if display == "" {
		display = storage.DefaultReason
	}
	_, err = mc.Gateway.Send(mc.Event.ChannelID,
		fmt.Sprintf("Banned %s for: %s", target.Mention(), display))
	return execErr("send ban confirmation", err)
}
