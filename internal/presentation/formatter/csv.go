package formatter

import (
	"encoding/csv"
	"io"
	"strconv"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, rows []LogRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Index", "Started At", "Entry"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{strconv.Itoa(row.Index), row.StartedAt, row.Entry}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
