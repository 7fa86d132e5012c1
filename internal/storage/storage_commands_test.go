package storage

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "datastore.json"))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordCommandAppends(t *testing.T) {
	store := newTestStorage(t)

	for _, name := range []string{"warn", "kick"} {
		err := store.RecordCommand("guild-1", CommandHistoryRecord{
			ChannelID: "chan-1",
			UserID:    "user-1",
			Username:  "mod",
			Command:   name,
			Datetime:  time.Now(),
		})
		if err != nil {
			t.Fatalf("RecordCommand() returned error: %v", err)
		}
	}

	history, err := store.CommandHistory("guild-1")
	if err != nil {
		t.Fatalf("CommandHistory() returned error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("len(history) = %d, want 2", len(history))
	}
	if history[0].Command != "warn" || history[1].Command != "kick" {
		t.Errorf("history order = [%s %s], want [warn kick]", history[0].Command, history[1].Command)
	}
}

func TestCommandHistoryIsBounded(t *testing.T) {
	store := newTestStorage(t)

	for i := 0; i < commandHistoryLimit+10; i++ {
		err := store.RecordCommand("guild-1", CommandHistoryRecord{
			Command:  fmt.Sprintf("cmd-%d", i),
			Datetime: time.Now(),
		})
		if err != nil {
			t.Fatalf("RecordCommand() returned error: %v", err)
		}
	}

	history, err := store.CommandHistory("guild-1")
	if err != nil {
		t.Fatalf("CommandHistory() returned error: %v", err)
	}
	if len(history) != commandHistoryLimit {
		t.Fatalf("len(history) = %d, want %d", len(history), commandHistoryLimit)
	}
	// The oldest entries are the ones trimmed.
	if got := history[len(history)-1].Command; got != fmt.Sprintf("cmd-%d", commandHistoryLimit+9) {
		t.Errorf("newest entry = %s, want cmd-%d", got, commandHistoryLimit+9)
	}
}

func TestGuildsAreIsolated(t *testing.T) {
	store := newTestStorage(t)

	if err := store.RecordCommand("guild-1", CommandHistoryRecord{Command: "warn"}); err != nil {
		t.Fatalf("RecordCommand() returned error: %v", err)
	}

	history, err := store.CommandHistory("guild-2")
	if err != nil {
		t.Fatalf("CommandHistory() returned error: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history for untouched guild = %v, want empty", history)
	}
}
