package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
)

func encodeEntry(entry LogEntry, format LogFormat) (string, error) {
	if format == FormatJSON {
		return sonic.MarshalString(entry)
	}
	return formatText(entry), nil
}

// ConsoleOutput writes logs to a terminal stream
type ConsoleOutput struct {
	mu     sync.Mutex
	writer io.Writer
	format LogFormat
}

func NewConsoleOutput(writer io.Writer, format LogFormat) *ConsoleOutput {
	return &ConsoleOutput{writer: writer, format: format}
}

func (c *ConsoleOutput) Write(entry LogEntry) error {
	line, err := encodeEntry(entry, c.format)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err = fmt.Fprintln(c.writer, line)
	return err
}

func (c *ConsoleOutput) Close() error {
	return nil
}

// FileOutput appends logs to a file
type FileOutput struct {
	mu     sync.Mutex
	file   *os.File
	format LogFormat
}

// NewFileOutput opens path for appending, creating its directory
func NewFileOutput(path string, format LogFormat) (*FileOutput, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return &FileOutput{file: file, format: format}, nil
}

func (f *FileOutput) Write(entry LogEntry) error {
	line, err := encodeEntry(entry, f.format)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	_, err = fmt.Fprintln(f.file, line)
	return err
}

func (f *FileOutput) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.file.Close()
}
