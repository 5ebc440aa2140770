package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{"#", "Started At"},
	}
}

func (f *TableFormatter) Format(w io.Writer, rows []LogRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded yet.")
		return err
	}

	widths := f.calculateColumnWidths(rows)

	var b strings.Builder
	f.writeBorder(&b, widths, "┌", "┬", "┐")
	f.writeRow(&b, f.headers, widths)
	f.writeBorder(&b, widths, "├", "┼", "┤")
	for _, row := range rows {
		f.writeRow(&b, []string{strconv.Itoa(row.Index), row.StartedAt}, widths)
	}
	f.writeBorder(&b, widths, "└", "┴", "┘")
	fmt.Fprintf(&b, "Total runs: %d\n", len(rows))

	_, err := io.WriteString(w, b.String())
	return err
}

func (f *TableFormatter) calculateColumnWidths(rows []LogRow) []int {
	widths := make([]int, len(f.headers))
	for i, h := range f.headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		cells := []string{strconv.Itoa(row.Index), row.StartedAt}
		for i, cell := range cells {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	return widths
}

func (f *TableFormatter) writeBorder(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(left)
	for i, width := range widths {
		if i > 0 {
			b.WriteString(mid)
		}
		b.WriteString(strings.Repeat("─", width+2))
	}
	b.WriteString(right)
	b.WriteString("\n")
}

func (f *TableFormatter) writeRow(b *strings.Builder, cells []string, widths []int) {
	b.WriteString("│")
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("│")
		}
		// Index column is right-aligned, the rest left-aligned
		if i == 0 {
			b.WriteString(" " + runewidth.FillLeft(cell, widths[i]) + " ")
		} else {
			b.WriteString(" " + runewidth.FillRight(cell, widths[i]) + " ")
		}
	}
	b.WriteString("│\n")
}
