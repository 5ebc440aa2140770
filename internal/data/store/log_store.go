package store

import (
	"fmt"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-countdown/internal/core/constants"
	"github.com/penwyp/go-countdown/internal/util"
)

// LogStore is the append-only start log, mirrored in full to a KV on every append
type LogStore struct {
	kv  KV
	key string

	mu      sync.RWMutex
	entries []string
}

// NewLogStore creates a log store under the standard storage key
func NewLogStore(kv KV) *LogStore {
	return &LogStore{
		kv:      kv,
		key:     constants.LogStorageKey,
		entries: make([]string, 0),
	}
}

// DecodeLog parses the persisted representation of the log
func DecodeLog(value string) ([]string, error) {
	var entries []string
	if err := sonic.UnmarshalString(value, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = make([]string, 0)
	}
	return entries, nil
}

// Load reads the persisted log. A missing key or malformed value leaves the log empty;
// only storage access failures are returned.
func (s *LogStore) Load() error {
	value, found, err := s.kv.Get(s.key)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make([]string, 0)

	if err != nil {
		return fmt.Errorf("failed to load log: %w", err)
	}
	if !found {
		util.LogInfo("No persisted log found, starting fresh")
		return nil
	}

	entries, err := DecodeLog(value)
	if err != nil {
		util.LogWarnf("Ignoring malformed persisted log: %v", err)
		return nil
	}

	s.entries = entries
	util.LogInfof("Loaded %d log entries", len(entries))
	return nil
}

// Append adds an entry and writes the whole log back.
// The entry is kept in memory even when persisting fails.
func (s *LogStore) Append(entry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)

	value, err := sonic.MarshalString(s.entries)
	if err != nil {
		return fmt.Errorf("failed to encode log: %w", err)
	}
	if err := s.kv.Set(s.key, value); err != nil {
		return fmt.Errorf("failed to persist log: %w", err)
	}
	return nil
}

// Entries returns a copy of the log in insertion order
func (s *LogStore) Entries() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]string, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Len returns the number of entries
func (s *LogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
