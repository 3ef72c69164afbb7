package sheet

import (
	"fmt"
	"io"
	"strings"
)

// writeMarkdown renders row 0 as the header line. Pipes inside cells are
// escaped so they do not split the column.
func writeMarkdown(w io.Writer, s *Sheet) error {
	rows := s.rows()
	for _, row := range rows {
		for i, cell := range row {
			row[i] = strings.ReplaceAll(cell, "|", `\|`)
		}
	}

	// Calculate column widths (minimum 3 for the separator dashes).
	widths := make([]int, s.Cols())
	for _, row := range rows {
		for i, cell := range row {
			if n := measure(s.width, cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	var sb strings.Builder
	writeMarkdownRow(&sb, rows[0], widths, s.width)
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	fmt.Fprintf(&sb, "| %s |\n", strings.Join(sep, " | "))
	for _, row := range rows[1:] {
		writeMarkdownRow(&sb, row, widths, s.width)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeMarkdownRow(sb *strings.Builder, cells []string, widths []int, m WidthMode) {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = padRight(cells[i], width, m)
	}
	fmt.Fprintf(sb, "| %s |\n", strings.Join(padded, " | "))
}
