// Package bottest provides an in-memory Gateway for tests. Every mutating
// call is recorded so tests can assert on side effects.
package bottest

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// ScheduledDelete records a DeleteAfter call.
type ScheduledDelete struct {
	ChannelID string
	MessageID string
	Delay     time.Duration
}

// Gateway is a fake bot.Gateway. Zero value is usable; populate the lookup
// maps as needed.
type Gateway struct {
	MembersByID   map[string]*discordgo.Member
	MembersByName map[string]*discordgo.Member
	Perms         map[string]int64 // userID -> permission set
	GuildData     *discordgo.Guild
	BanList       []*discordgo.GuildBan
	Recent        []*discordgo.Message
	LatencyValue  time.Duration

	// Error overrides, applied before any recording.
	SendErr   error
	KickErr   error
	BanErr    error
	UnbanErr  error
	DeleteErr error
	PermsErr  error

	Sent       []SentMessage
	SentEmbeds []*discordgo.MessageEmbed
	Kicked     []string
	Banned     []string
	Unbanned   []string
	Deleted    [][]string
	Scheduled  []ScheduledDelete

	nextID int
}

// SentMessage records a plain text Send.
type SentMessage struct {
	ChannelID string
	Content   string
}

func (g *Gateway) Member(guildID, userID string) (*discordgo.Member, error) {
	if m, ok := g.MembersByID[userID]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("unknown member %s", userID)
}

func (g *Gateway) SearchMember(guildID, query string) (*discordgo.Member, error) {
	if m, ok := g.MembersByName[query]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("no member matching %q", query)
}

func (g *Gateway) MemberPermissions(guildID, channelID, userID string) (int64, error) {
	if g.PermsErr != nil {
		return 0, g.PermsErr
	}
	return g.Perms[userID], nil
}

func (g *Gateway) Guild(guildID string) (*discordgo.Guild, error) {
	if g.GuildData == nil {
		return nil, fmt.Errorf("unknown guild %s", guildID)
	}
	return g.GuildData, nil
}

func (g *Gateway) Bans(guildID string) ([]*discordgo.GuildBan, error) {
	return g.BanList, nil
}

func (g *Gateway) Kick(guildID, userID, reason string) error {
	if g.KickErr != nil {
		return g.KickErr
	}
	g.Kicked = append(g.Kicked, userID)
	return nil
}

func (g *Gateway) Ban(guildID, userID, reason string) error {
	if g.BanErr != nil {
		return g.BanErr
	}
	g.Banned = append(g.Banned, userID)
	return nil
}

func (g *Gateway) Unban(guildID, userID string) error {
	if g.UnbanErr != nil {
		return g.UnbanErr
	}
	g.Unbanned = append(g.Unbanned, userID)
	return nil
}

func (g *Gateway) RecentMessages(channelID string, limit int) ([]*discordgo.Message, error) {
	if limit > len(g.Recent) {
		limit = len(g.Recent)
	}
	return g.Recent[:limit], nil
}

func (g *Gateway) DeleteMessages(channelID string, messageIDs []string) error {
	if g.DeleteErr != nil {
		return g.DeleteErr
	}
	g.Deleted = append(g.Deleted, messageIDs)
	return nil
}

func (g *Gateway) Send(channelID, content string) (*discordgo.Message, error) {
	if g.SendErr != nil {
		return nil, g.SendErr
	}
	g.Sent = append(g.Sent, SentMessage{ChannelID: channelID, Content: content})
	g.nextID++
	return &discordgo.Message{ID: fmt.Sprintf("sent-%d", g.nextID), ChannelID: channelID, Content: content}, nil
}

func (g *Gateway) SendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	if g.SendErr != nil {
		return nil, g.SendErr
	}
	g.SentEmbeds = append(g.SentEmbeds, embed)
	g.nextID++
	return &discordgo.Message{ID: fmt.Sprintf("sent-%d", g.nextID), ChannelID: channelID}, nil
}

func (g *Gateway) DeleteAfter(channelID, messageID string, delay time.Duration) {
	g.Scheduled = append(g.Scheduled, ScheduledDelete{ChannelID: channelID, MessageID: messageID, Delay: delay})
}

func (g *Gateway) Latency() time.Duration {
	return g.LatencyValue
}

// LastSent returns the content of the most recent Send, or "".
func (g *Gateway) LastSent() string {
	if len(g.Sent) == 0 {
		return ""
	}
	return g.Sent[len(g.Sent)-1].Content
}
