package command

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	mentionPattern   = regexp.MustCompile(`^<@!?(\d+)>$`)
	snowflakePattern = regexp.MustCompile(`^\d{15,20}$`)
)

// resolveMember resolves a user-supplied token (mention, raw ID, username,
// or nickname) against the guild's members. A token that resolves to nothing
// is ErrMemberNotFound; an empty token is ErrMissingArgument.
func (mc *MessageContext) resolveMember(token string) (memberRef, error) {
	if token == "" {
		return memberRef{}, ErrMissingArgument
	}

	guildID := mc.Event.GuildID

	if m := mentionPattern.FindStringSubmatch(token); m != nil {
		member, err := mc.Gateway.Member(guildID, m[1])
		if err != nil {
			return memberRef{}, fmt.Errorf("%w: %s", ErrMemberNotFound, token)
		}
		return newMemberRef(member), nil
	}

	if snowflakePattern.MatchString(token) {
		if member, err := mc.Gateway.Member(guildID, token); err == nil {
			return newMemberRef(member), nil
		}
	}

	member, err := mc.Gateway.SearchMember(guildID, token)
	if err != nil {
		return memberRef{}, fmt.Errorf("%w: %s", ErrMemberNotFound, token)
	}
	return newMemberRef(member), nil
}

// targetAndReason splits the arguments of the "<member> [reason...]" shape:
// the first token names the target, the rest is free text.
func (mc *MessageContext) targetAndReason() (token, reason string) {
	if len(mc.Args) == 0 {
		return "", ""
	}
	token = mc.Args[0]
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(mc.RawArgs), token))
	return token, rest
}

// requireTarget resolves the leading member argument of a command.
func (mc *MessageContext) requireTarget() (memberRef, string, error) {
	token, reason := mc.targetAndReason()
	ref, err := mc.resolveMember(token)
	if err != nil {
		return memberRef{}, "", err
	}
	return ref, reason, nil
}
