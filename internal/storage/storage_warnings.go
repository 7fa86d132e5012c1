package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"server-warden/datastore"
)

// DefaultReason is recorded when a warning is issued without one.
const DefaultReason = "No reason provided"

// ErrWriteFailed reports that an appended warning is visible in memory but
// could not be persisted. Callers may proceed; the durability gap is theirs
// to surface.
var ErrWriteFailed = errors.New("warning store write failed")

// WarningStore is the durable mapping from user ID to the ordered list of
// warning reasons. Appends are serialized by an exclusive lock so concurrent
// warnings for the same user cannot lose entries, and every append rewrites
// the whole file before returning.
type WarningStore struct {
	ds *datastore.DataStore
	mu sync.Mutex
}

// NewWarningStore opens the warning file at path. A missing file starts
// empty; a file whose values are not lists of strings is a fatal error.
func NewWarningStore(path string) (*WarningStore, error) {
	ds, err := datastore.NewWithConfig(&datastore.Config{
		FilePath: path,
		// Appends save synchronously; no autosave loop needed.
		AutoSaveInterval: 0,
		BackupCount:      3,
		Logger:           logrus.StandardLogger().WithField("component", "warnings"),
	})
	if err != nil {
		return nil, err
	}

	for userID, value := range ds.Items() {
		if _, err := toReasonList(value); err != nil {
			ds.Close()
			return nil, fmt.Errorf("warning store corrupt: user %q: %w", userID, err)
		}
	}

	return &WarningStore{ds: ds}, nil
}

// Append records a warning for userID. An empty reason becomes
// DefaultReason. The full mapping is persisted before returning; on a write
// failure the in-memory append stands and ErrWriteFailed is returned.
func (w *WarningStore) Append(userID, reason string) error {
	if reason == "" {
		reason = DefaultReason
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	reasons := w.warnings(userID)
	reasons = append(reasons, reason)
	w.ds.Add(userID, reasons)

	if err := w.ds.SaveToFile(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// Warnings returns the recorded reasons for userID in insertion order, or an
// empty slice. It never fails.
func (w *WarningStore) Warnings(userID string) []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.warnings(userID)
}

// Close flushes and closes the backing file.
func (w *WarningStore) Close() error {
	return w.ds.Close()
}

func (w *WarningStore) warnings(userID string) []string {
	value, exists := w.ds.Get(userID)
	if !exists {
		return nil
	}
	reasons, err := toReasonList(value)
	if err != nil {
		// Validated at load and only written as []string afterwards.
		logrus.WithField("component", "warnings").WithError(err).
			WithField("user_id", userID).Error("unreadable warning record")
		return nil
	}
	return reasons
}

// toReasonList rehydrates a stored value into []string. Values read from
// disk arrive as []any; values written this process are []string already.
func toReasonList(value any) ([]string, error) {
	if value == nil {
		return nil, nil
	}
	if reasons, ok := value.([]string); ok {
		return append([]string(nil), reasons...), nil
	}

	jsonData, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var reasons []string
	if err := json.Unmarshal(jsonData, &reasons); err != nil {
		return nil, err
	}
	return reasons, nil
}
