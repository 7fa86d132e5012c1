package command

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"server-warden/internal/version"
)

type BotInfoCommand struct{}

func (c *BotInfoCommand) Name() string           { return "botinfo" }
func (c *BotInfoCommand) Aliases() []string      { return nil }
func (c *BotInfoCommand) Description() string    { return "Show bot build and host statistics" }
func (c *BotInfoCommand) UserPermissions() int64 { return 0 }

func (c *BotInfoCommand) Run(mc *MessageContext) error {
	uptime := "unknown"
	if info, err := host.Info(); err == nil {
		uptime = (time.Duration(info.Uptime) * time.Second).String()
	}

	memory := "unknown"
	if vm, err := mem.VirtualMemory(); err == nil {
		memory = fmt.Sprintf("%.1f%% of %d MB", vm.UsedPercent, vm.Total/1024/1024)
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s %s (%s)", version.AppName, version.Version, version.Commit),
		Color: 0x95a5a6,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Host Uptime", Value: uptime, Inline: true},
			{Name: "Host Memory", Value: memory, Inline: true},
			{Name: "Runtime", Value: fmt.Sprintf("%s, %d goroutines", runtime.Version(), runtime.NumGoroutine()), Inline: true},
		},
	}

	_, err := mc.Gateway.SendEmbed(mc.Event.ChannelID, embed)
	return execErr("send bot info", err)
}
