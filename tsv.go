package sheet

import (
	"bytes"
	"io"
	"strings"
)

func writeTSV(w io.Writer, s *Sheet) error {
	var buf bytes.Buffer
	for _, row := range s.rows() {
		buf.WriteString(strings.Join(row, "\t"))
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}
