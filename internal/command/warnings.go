package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type ViewWarningsCommand struct{}

func (c *ViewWarningsCommand) Name() string           { return "view_warnings" }
func (c *ViewWarningsCommand) Aliases() []string      { return []string{"warnings"} }
func (c *ViewWarningsCommand) Description() string    { return "List the warnings recorded for a member" }
func (c *ViewWarningsCommand) UserPermissions() int64 { return discordgo.PermissionKickMembers }

func (c *ViewWarningsCommand) Run(mc *MessageContext) error {
	target, _, err := mc.requireTarget()
	if err != nil {
		return err
	}

	reasons := mc.Warnings.Warnings(target.ID)
	if len(reasons) == 0 {
		_, err := mc.Gateway.Send(mc.Event.ChannelID,
			fmt.Sprintf("%s has no warnings.", target.Mention()))
		return execErr("send warnings reply", err)
	}

	_, err = mc.Gateway.Send(mc.Event.ChannelID,
		fmt.Sprintf("%s has the following warnings: %s", target.Mention(), strings.Join(reasons, ", ")))
	return execErr("send warnings reply", err)
}
