package command

import "github.com/bwmarrin/discordgo"

// memberRef is a resolved target member with the fields commands actually
// use pulled out, so handlers never dig through nested nilable structs.
type memberRef struct {
	ID       string
	Username string
	Member   *discordgo.Member
}

func newMemberRef(m *discordgo.Member) memberRef {
	ref := memberRef{Member: m}
	if m != nil && m.User != nil {
		ref.ID = m.User.ID
		ref.Username = m.User.Username
	}
	return ref
}

// Mention renders the member as a Discord mention.
func (r memberRef) Mention() string {
	return "<@" + r.ID + ">"
}
