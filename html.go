package sheet

import (
	"html"
	"io"
	"strings"
)

// writeHTML renders row 0 inside <thead> and the remaining rows inside
// <tbody>.
func writeHTML(w io.Writer, s *Sheet) error {
	rows := s.rows()

	var sb strings.Builder
	sb.WriteString("<table>\n")
	sb.WriteString("  <thead>\n")
	writeHTMLRow(&sb, rows[0], "th")
	sb.WriteString("  </thead>\n")
	sb.WriteString("  <tbody>\n")
	for _, row := range rows[1:] {
		writeHTMLRow(&sb, row, "td")
	}
	sb.WriteString("  </tbody>\n")
	sb.WriteString("</table>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeHTMLRow(sb *strings.Builder, cells []string, tag string) {
	sb.WriteString("    <tr>\n")
	for _, cell := range cells {
		sb.WriteString("      <" + tag + ">" + html.EscapeString(cell) + "</" + tag + ">\n")
	}
	sb.WriteString("    </tr>\n")
}
