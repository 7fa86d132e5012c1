package command

import "fmt"

type PingCommand struct{}

func (c *PingCommand) Name() string           { return "ping" }
func (c *PingCommand) Aliases() []string      { return nil }
func (c *PingCommand) Description() string    { return "Check bot latency" }
func (c *PingCommand) UserPermissions() int64 { return 0 }

func (c *PingCommand) Run(mc *MessageContext) error {
	latency := mc.Gateway.Latency().Milliseconds()
	_, err := mc.Gateway.Send(mc.Event.ChannelID,
		fmt.Sprintf("Pong! Latency: %dms", latency))
	return execErr("send pong", err)
}
