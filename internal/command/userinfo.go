package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type UserInfoCommand struct{}

func (c *UserInfoCommand) Name() string           { return "userinfo" }
func (c *UserInfoCommand) Aliases() []string      { return nil }
func (c *UserInfoCommand) Description() string    { return "Show information about a member" }
func (c *UserInfoCommand) UserPermissions() int64 { return 0 }

func (c *UserInfoCommand) Run(mc *MessageContext) error {
	var target memberRef
	if len(mc.Args) == 0 {
		// No argument: the issuer is the subject.
		member, err := mc.Gateway.Member(mc.Event.GuildID, mc.Event.Author.ID)
		if err != nil {
			return execErr("fetch issuing member", err)
		}
		target = newMemberRef(member)
	} else {
		ref, _, err := mc.requireTarget()
		if err != nil {
			return err
		}
		target = ref
	}

	joined := ""
	if target.Member != nil && !target.Member.JoinedAt.IsZero() {
		joined = target.Member.JoinedAt.Format(embedDateFormat)
	}

	roles := "none"
	if names := mc.roleNames(target); len(names) > 0 {
		roles = strings.Join(names, ", ")
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Info", target.Username),
		Color: 0x2ecc71,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "ID", Value: target.ID, Inline: true},
			{Name: "Joined At", Value: joined, Inline: true},
			{Name: "Roles", Value: roles, Inline: true},
		},
	}

	_, err := mc.Gateway.SendEmbed(mc.Event.ChannelID, embed)
	return execErr("send user info", err)
}

// roleNames resolves the member's role IDs against the guild's role list,
// skipping @everyone.
func (mc *MessageContext) roleNames(target memberRef) []string {
	if target.Member == nil || len(target.Member.Roles) == 0 {
		return nil
	}
	guild, err := mc.Gateway.Guild(mc.Event.GuildID)
	if err != nil {
		return nil
	}

	byID := make(map[string]string, len(guild.Roles))
	for _, role := range guild.Roles {
		if role.Name != "@everyone" {
			byID[role.ID] = role.Name
		}
	}

	var names []string
	for _, id := range target.Member.Roles {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}
