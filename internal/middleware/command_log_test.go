package middleware

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"server-warden/internal/bot/bottest"
	"server-warden/internal/command"
	"server-warden/internal/storage"
	"server-warden/pkg/cmd"
)

func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	store, err := storage.New(filepath.Join(t.TempDir(), "datastore.json"))
	if err != nil {
		t.Fatalf("storage.New() returned error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCommandLoggerRecordsSuccess(t *testing.T) {
	store := newTestStorage(t)
	inner := &gatedCommand{}
	wrapped := cmd.Apply(&command.Adapter{Cmd: inner}, WithCommandLogger())

	inv := invocation("alice spam", &bottest.Gateway{})
	inv.Data.(*command.MessageContext).Storage = store

	if err := wrapped.Run(context.Background(), inv); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	history, err := store.CommandHistory("guild-1")
	if err != nil {
		t.Fatalf("CommandHistory() returned error: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("len(history) = %d, want 1", len(history))
	}
	if history[0].Command != "gated" || history[0].Param != "alice spam" {
		t.Errorf("recorded %s %q, want gated %q", history[0].Command, history[0].Param, "alice spam")
	}
	if history[0].UserID != "issuer-1" {
		t.Errorf("UserID = %q, want issuer-1", history[0].UserID)
	}
}

func TestCommandLoggerSkipsFailedRuns(t *testing.T) {
	store := newTestStorage(t)
	wrapped := cmd.Apply(&failingCommand{}, WithCommandLogger())

	inv := invocation("", &bottest.Gateway{})
	inv.Data.(*command.MessageContext).Storage = store

	if err := wrapped.Run(context.Background(), inv); err == nil {
		t.Fatal("Run() error = nil, want inner failure")
	}

	history, err := store.CommandHistory("guild-1")
	if err != nil {
		t.Fatalf("CommandHistory() returned error: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history = %v, want empty after failed run", history)
	}
}

type failingCommand struct{}

func (c *failingCommand) Name() string        { return "failing" }
func (c *failingCommand) Aliases() []string   { return nil }
func (c *failingCommand) Description() string { return "always fails" }
func (c *failingCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	return errors.New("boom")
}
