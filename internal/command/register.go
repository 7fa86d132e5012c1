package command

import "server-warden/pkg/cmd"

// RegisterAll adds every command to the registry with the shared middleware
// chain. The first middleware runs outermost, so a permission check placed
// ahead of the logger runs before the handler and suppresses it entirely.
func RegisterAll(r *cmd.Registry, mws ...cmd.Middleware) {
	for _, c := range []DiscordCommand{
		&KickCommand{},
		&BanCommand{},
		&UnbanCommand{},
		&ClearCommand{},
		&WarnCommand{},
		&ViewWarningsCommand{},
		&ServerInfoCommand{},
		&UserInfoCommand{},
		&PingCommand{},
		&ComplimentCommand{},
		&BotInfoCommand{},
	} {
		Register(r, c, mws...)
	}
}
