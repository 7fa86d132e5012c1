package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"server-warden/internal/bot"
)

// sessionGateway implements bot.Gateway on a live discordgo session.
// Reads prefer the session state cache and fall back to the REST API.
type sessionGateway struct {
	s   *discordgo.Session
	log *logrus.Entry
}

// NewSessionGateway wraps a discordgo session in the gateway interface.
func NewSessionGateway(s *discordgo.Session) bot.Gateway {
	return &sessionGateway{
		s:   s,
		log: logrus.WithField("component", "gateway"),
	}
}

func (g *sessionGateway) Member(guildID, userID string) (*discordgo.Member, error) {
	if member, err := g.s.State.Member(guildID, userID); err == nil {
		return member, nil
	}
	return g.s.GuildMember(guildID, userID)
}

func (g *sessionGateway) SearchMember(guildID, query string) (*discordgo.Member, error) {
	members, err := g.s.GuildMembersSearch(guildID, query, 1)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, discordgo.ErrStateNotFound
	}
	return members[0], nil
}

func (g *sessionGateway) MemberPermissions(guildID, channelID, userID string) (int64, error) {
	return g.s.UserChannelPermissions(userID, channelID)
}

func (g *sessionGateway) Guild(guildID string) (*discordgo.Guild, error) {
	if guild, err := g.s.State.Guild(guildID); err == nil {
		return guild, nil
	}
	return g.s.Guild(guildID)
}

func (g *sessionGateway) Bans(guildID string) ([]*discordgo.GuildBan, error) {
	return g.s.GuildBans(guildID, 0, "", "")
}

func (g *sessionGateway) Kick(guildID, userID, reason string) error {
	return g.s.GuildMemberDeleteWithReason(guildID, userID, reason)
}

func (g *sessionGateway) Ban(guildID, userID, reason string) error {
	return g.s.GuildBanCreateWithReason(guildID, userID, reason, 0)
}

func (g *sessionGateway) Unban(guildID, userID string) error {
	return g.s.GuildBanDelete(guildID, userID)
}

func (g *sessionGateway) RecentMessages(channelID string, limit int) ([]*discordgo.Message, error) {
	return g.s.ChannelMessages(channelID, limit, "", "", "")
}

func (g *sessionGateway) DeleteMessages(channelID string, messageIDs []string) error {
	return g.s.ChannelMessagesBulkDelete(channelID, messageIDs)
}

func (g *sessionGateway) Send(channelID, content string) (*discordgo.Message, error) {
	return g.s.ChannelMessageSend(channelID, content)
}

func (g *sessionGateway) SendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	return g.s.ChannelMessageSendEmbed(channelID, embed)
}

func (g *sessionGateway) DeleteAfter(channelID, messageID string, delay time.Duration) {
	time.AfterFunc(delay, func() {
		if err := g.s.ChannelMessageDelete(channelID, messageID); err != nil {
			g.log.WithError(err).WithField("message_id", messageID).Warn("delayed delete failed")
		}
	})
}

func (g *sessionGateway) Latency() time.Duration {
	return g.s.HeartbeatLatency()
}
