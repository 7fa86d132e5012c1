package command

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

const embedDateFormat = "Jan 02, 2006"

type ServerInfoCommand struct{}

func (c *ServerInfoCommand) Name() string           { return "serverinfo" }
func (c *ServerInfoCommand) Aliases() []string      { return nil }
func (c *ServerInfoCommand) Description() string    { return "Show information about this server" }
func (c *ServerInfoCommand) UserPermissions() int64 { return 0 }

func (c *ServerInfoCommand) Run(mc *MessageContext) error {
	guild, err := mc.Gateway.Guild(mc.Event.GuildID)
	if err != nil {
		return execErr("fetch guild", err)
	}

	owner := "<@" + guild.OwnerID + ">"
	if member, err := mc.Gateway.Member(guild.ID, guild.OwnerID); err == nil && member.User != nil {
		owner = member.User.Username
	}

	created := ""
	if ts, err := discordgo.SnowflakeTimestamp(guild.ID); err == nil {
		created = ts.Format(embedDateFormat)
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Info", guild.Name),
		Color: 0x3498db,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Owner", Value: owner, Inline: true},
			{Name: "Members", Value: strconv.Itoa(guild.MemberCount), Inline: true},
			{Name: "Created At", Value: created, Inline: true},
		},
	}

	_, err = mc.Gateway.SendEmbed(mc.Event.ChannelID, embed)
	return execErr("send server info", err)
}
