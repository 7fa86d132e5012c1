package command

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/bot/bottest"
)

func recentMessages(n int) []*discordgo.Message {
	msgs := make([]*discordgo.Message, n)
	for i := range msgs {
		msgs[i] = &discordgo.Message{ID: fmt.Sprintf("msg-%d", i)}
	}
	return msgs
}

func TestClearDeletesCountPlusTrigger(t *testing.T) {
	gw := &bottest.Gateway{Recent: recentMessages(10)}
	mc := newContext(t, gw, "3")

	if err := (&ClearCommand{}).Run(mc); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if len(gw.Deleted) != 1 {
		t.Fatalf("len(Deleted) = %d, want 1 bulk delete", len(gw.Deleted))
	}
	// 3 requested plus the command message itself.
	if got := len(gw.Deleted[0]); got != 4 {
		t.Errorf("deleted %d messages, want 4", got)
	}
	if got := gw.LastSent(); got != "Cleared 3 messages!" {
		t.Errorf("reply = %q, want %q", got, "Cleared 3 messages!")
	}
}

func TestClearSchedulesConfirmationDelete(t *testing.T) {
	gw := &bottest.Gateway{Recent: recentMessages(5)}
	mc := newContext(t, gw, "2")

	if err := (&ClearCommand{}).Run(mc); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if len(gw.Scheduled) != 1 {
		t.Fatalf("len(Scheduled) = %d, want 1", len(gw.Scheduled))
	}
	if gw.Scheduled[0].Delay != 5*time.Second {
		t.Errorf("Delay = %v, want 5s", gw.Scheduled[0].Delay)
	}
	if len(gw.Sent) == 0 || gw.Scheduled[0].MessageID != "sent-1" {
		t.Errorf("scheduled delete targets %q, want the confirmation message", gw.Scheduled[0].MessageID)
	}
}

func TestClearShortChannel(t *testing.T) {
	// Fewer messages exist than requested; everything available goes.
	gw := &bottest.Gateway{Recent: recentMessages(2)}
	mc := newContext(t, gw, "10")

	if err := (&ClearCommand{}).Run(mc); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if got := len(gw.Deleted[0]); got != 2 {
		t.Errorf("deleted %d messages, want 2", got)
	}
}

func TestClearInvalidCount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no argument", ""},
		{"not a number", "lots"},
		{"zero", "0"},
		{"negative", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &bottest.Gateway{Recent: recentMessages(5)}
			mc := newContext(t, gw, tt.raw)

			err := (&ClearCommand{}).Run(mc)
			if !errors.Is(err, ErrMissingArgument) {
				t.Errorf("Run() error = %v, want ErrMissingArgument", err)
			}
			if len(gw.Deleted) != 0 {
				t.Errorf("Deleted = %v, want no calls", gw.Deleted)
			}
		})
	}
}

func TestClearBulkDeleteFailure(t *testing.T) {
	gw := &bottest.Gateway{
		Recent:    recentMessages(5),
		DeleteErr: errors.New("messages too old"),
	}
	mc := newContext(t, gw, "2")

	err := (&ClearCommand{}).Run(mc)
	var execError *ExecError
	if !errors.As(err, &execError) {
		t.Fatalf("Run() error = %v, want *ExecError", err)
	}
	if len(gw.Sent) != 0 {
		t.Errorf("Sent = %v, want no confirmation after failure", gw.Sent)
	}
}
