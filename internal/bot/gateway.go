// Package bot defines the gateway capability surface the commands consume.
// The Discord session implements it in internal/discord; tests use the fake
// in bottest.
package bot

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Gateway is everything a command may ask of the chat platform. Every call
// is a potential suspension point; none of them retry.
type Gateway interface {
	// Member resolves a member by user ID.
	Member(guildID, userID string) (*discordgo.Member, error)
	// SearchMember resolves a member by username or nickname prefix.
	SearchMember(guildID, query string) (*discordgo.Member, error)
	// MemberPermissions returns the flattened permission set of a member
	// in a channel, as computed by the platform.
	MemberPermissions(guildID, channelID, userID string) (int64, error)
	Guild(guildID string) (*discordgo.Guild, error)
	Bans(guildID string) ([]*discordgo.GuildBan, error)

	Kick(guildID, userID, reason string) error
	Ban(guildID, userID, reason string) error
	Unban(guildID, userID string) error

	RecentMessages(channelID string, limit int) ([]*discordgo.Message, error)
	DeleteMessages(channelID string, messageIDs []string) error

	Send(channelID, content string) (*discordgo.Message, error)
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
	// DeleteAfter schedules a message for deletion once delay has passed.
	DeleteAfter(channelID, messageID string, delay time.Duration)

	Latency() time.Duration
}
