// Package storage persists the bot's state: the warning records and the
// per-guild command history. Each lives in its own keyed JSON file.
package storage

import (
	"encoding/json"
	"fmt"

	"server-warden/datastore"
)

const commandHistoryLimit = 50

// Storage holds per-guild operational records (currently the command
// history). Guild ID is the datastore key.
type Storage struct {
	ds *datastore.DataStore
}

// Record is the full per-guild document.
type Record struct {
	CommandsHistory []CommandHistoryRecord `json:"cmd_history"`
}

// New opens the guild record store at filePath.
func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

// Close flushes and closes the backing store.
func (s *Storage) Close() error {
	return s.ds.Close()
}

// getOrCreateGuildRecord returns the guild's Record, creating an empty one
// on first access. Stored values come back as map[string]any after a file
// load, so they are rehydrated through JSON.
func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	data, exists := s.ds.Get(guildID)
	if !exists {
		record := &Record{CommandsHistory: []CommandHistoryRecord{}}
		s.ds.Add(guildID, record)
		return record, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal guild record: %w", err)
	}

	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("unmarshal guild record: %w", err)
	}

	if len(record.CommandsHistory) > commandHistoryLimit {
		record.CommandsHistory = record.CommandsHistory[len(record.CommandsHistory)-commandHistoryLimit:]
	}

	return &record, nil
}
