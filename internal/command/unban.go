package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// BanMatcher turns the user-supplied identity string into a predicate over
// banned users. It exists because the legacy "name#discriminator" scheme is
// deprecated; deployments on the new username system can swap the strategy
// without touching the command.
type BanMatcher func(input string) (func(*discordgo.User) bool, error)

// LegacyTagMatcher matches the classic name#discriminator pair exactly.
// Input without the separator is malformed.
func LegacyTagMatcher(input string) (func(*discordgo.User) bool, error) {
	name, discriminator, found := strings.Cut(input, "#")
	if !found || name == "" {
		return nil, fmt.Errorf("%w: expected name#discriminator", ErrMissingArgument)
	}
	return func(u *discordgo.User) bool {
		return u != nil && u.Username == name && u.Discriminator == discriminator
	}, nil
}

// UsernameMatcher matches the unique-username identity scheme.
func UsernameMatcher(input string) (func(*discordgo.User) bool, error) {
	if input == "" {
		return nil, ErrMissingArgument
	}
	return func(u *discordgo.User) bool {
		return u != nil && u.Username == input
	}, nil
}

type UnbanCommand struct {
	// Match defaults to LegacyTagMatcher.
	Match BanMatcher
}

func (c *UnbanCommand) Name() string           { return "unban" }
func (c *UnbanCommand) Aliases() []string      { return nil }
func (c *UnbanCommand) Description() string    { return "Unban a previously banned user" }
func (c *UnbanCommand) UserPermissions() int64 { return discordgo.PermissionBanMembers }

func (c *UnbanCommand) Run(mc *MessageContext) error {
	input := strings.TrimSpace(mc.RawArgs)
	if input == "" {
		return ErrMissingArgument
	}

	matcher := c.Match
	if matcher == nil {
		matcher = LegacyTagMatcher
	}
	matches, err := matcher(input)
	if err != nil {
		return err
	}

	bans, err := mc.Gateway.Bans(mc.Event.GuildID)
	if err != nil {
		return execErr("fetch ban list", err)
	}

	// First match wins if the list ever holds duplicates.
	for _, ban := range bans {
		if !matches(ban.User) {
			continue
		}
		if err := mc.Gateway.Unban(mc.Event.GuildID, ban.User.ID); err != nil {
			return execErr("unban user", err)
		}
		_, err := mc.Gateway.Send(mc.Event.ChannelID,
			fmt.Sprintf("Unbanned %s", ban.User.Mention()))
		return execErr("send unban confirmation", err)
	}

	_, err = mc.Gateway.Send(mc.Event.ChannelID,
		fmt.Sprintf("User %s not found in the ban list.", input))
	return execErr("send unban reply", err)
}
