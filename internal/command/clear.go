package command

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
)

const confirmationTTL = 5 * time.Second

type ClearCommand struct{}

func (c *ClearCommand) Name() string           { return "clear" }
func (c *ClearCommand) Aliases() []string      { return nil }
func (c *ClearCommand) Description() string    { return "Delete the most recent messages in this channel" }
func (c *ClearCommand) UserPermissions() int64 { return discordgo.PermissionManageMessages }

func (c *ClearCommand) Run(mc *MessageContext) error {
	if len(mc.Args) == 0 {
		return ErrMissingArgument
	}
	count, err := strconv.Atoi(mc.Args[0])
	if err != nil || count < 1 {
		return fmt.Errorf("%w: message count must be a positive integer", ErrMissingArgument)
	}

	channelID := mc.Event.ChannelID

	// count+1 so the triggering command message goes too.
	messages, err := mc.Gateway.RecentMessages(channelID, count+1)
	if err != nil {
		return execErr("fetch recent messages", err)
	}

	ids := make([]string, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}
	if err := mc.Gateway.DeleteMessages(channelID, ids); err != nil {
		return execErr("bulk delete messages", err)
	}

	confirmation, err := mc.Gateway.Send(channelID, fmt.Sprintf("Cleared %d messages!", count))
	if err != nil {
		return execErr("send clear confirmation", err)
	}
	mc.Gateway.DeleteAfter(channelID, confirmation.ID, confirmationTTL)
	return nil
}
