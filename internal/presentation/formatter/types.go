package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-countdown/internal/core/constants"
)

// LogRow is one persisted run-log entry prepared for output
type LogRow struct {
	Index     int    `json:"index"`
	StartedAt string `json:"started_at"`
	Entry     string `json:"entry"`
}

// Formatter writes log rows in one output format
type Formatter interface {
	Format(w io.Writer, rows []LogRow) error
}

// Output formats accepted by NewFormatter
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputCSV  = "csv"
)

// NewFormatter returns the formatter for an output name
func NewFormatter(output string) (Formatter, error) {
	switch strings.ToLower(output) {
	case "", OutputText, "table":
		return NewTableFormatter(), nil
	case OutputJSON:
		return NewJSONFormatter(), nil
	case OutputCSV:
		return NewCSVFormatter(), nil
	default:
		return nil, fmt.Errorf("invalid output format '%s': must be one of text, json, csv", output)
	}
}

// BuildRows numbers entries from 1 and extracts the start time of each
func BuildRows(entries []string) []LogRow {
	rows := make([]LogRow, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, LogRow{
			Index:     i + 1,
			StartedAt: strings.TrimPrefix(entry, constants.LogStartedPrefix),
			Entry:     entry,
		})
	}
	return rows
}
