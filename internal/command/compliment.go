package command

import (
	"fmt"
	"math/rand"
)

var compliments = []string{
	"You're amazing!",
	"You're a true gem!",
	"You light up the room!",
	"You're the best!",
	"You're fantastic!",
	"You make everything better!",
}

type ComplimentCommand struct{}

func (c *ComplimentCommand) Name() string           { return "compliment" }
func (c *ComplimentCommand) Aliases() []string      { return nil }
func (c *ComplimentCommand) Description() string    { return "Send a random compliment" }
func (c *ComplimentCommand) UserPermissions() int64 { return 0 }

func (c *ComplimentCommand) Run(mc *MessageContext) error {
	mention := mc.Event.Author.Mention()
	if len(mc.Args) > 0 {
		target, _, err := mc.requireTarget()
		if err != nil {
			return err
		}
		mention = target.Mention()
	}

	_, err := mc.Gateway.Send(mc.Event.ChannelID,
		fmt.Sprintf("%s, %s", mention, compliments[rand.Intn(len(compliments))]))
	return execErr("send compliment", err)
}
