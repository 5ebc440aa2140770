package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-countdown/internal/util"
)

// KV is a minimal durable string store
type KV interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
}

// FileKV keeps every key in a single JSON object file.
// Writes replace the file atomically.
type FileKV struct {
	path   string
	mu     sync.Mutex
	data   map[string]string
	loaded bool
}

// NewFileKV creates a store backed by path, creating its directory
func NewFileKV(path string) (*FileKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileKV{
		path: path,
		data: make(map[string]string),
	}, nil
}

// Path returns the backing file
func (kv *FileKV) Path() string {
	return kv.path
}

func (kv *FileKV) Get(key string) (string, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	if err := kv.loadLocked(); err != nil {
		return "", false, err
	}
	value, found := kv.data[key]
	return value, found, nil
}

func (kv *FileKV) Set(key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	if err := kv.loadLocked(); err != nil {
		return err
	}
	kv.data[key] = value
	return kv.saveLocked()
}

// Reload drops the in-memory copy so the next access rereads the file
func (kv *FileKV) Reload() {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.loaded = false
}

func (kv *FileKV) loadLocked() error {
	if kv.loaded {
		return nil
	}

	raw, err := os.ReadFile(kv.path)
	if err != nil {
		if os.IsNotExist(err) {
			kv.data = make(map[string]string)
			kv.loaded = true
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	data := make(map[string]string)
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &data); err != nil {
			// Unreadable storage is treated as empty and replaced on the next write
			util.LogWarnf("Ignoring malformed storage file %s: %v", kv.path, err)
			data = make(map[string]string)
		}
	}

	kv.data = data
	kv.loaded = true
	return nil
}

func (kv *FileKV) saveLocked() error {
	raw, err := sonic.ConfigStd.MarshalIndent(kv.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}

	tempPath := kv.path + ".tmp"
	if err := os.WriteFile(tempPath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tempPath, kv.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to save storage: %w", err)
	}

	util.LogDebugf("Saved %d storage keys to %s", len(kv.data), kv.path)
	return nil
}

// MemoryKV is an in-process KV
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (kv *MemoryKV) Get(key string) (string, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	value, found := kv.data[key]
	return value, found, nil
}

func (kv *MemoryKV) Set(key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.data[key] = value
	return nil
}
