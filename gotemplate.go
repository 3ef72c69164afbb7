package sheet

import (
	"bytes"
	"fmt"
	"io"
	"text/template"
)

func writeGoTemplate(w io.Writer, tmplStr string, s *Sheet) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}
	var buf bytes.Buffer
	for _, row := range s.rows() {
		if err := tmpl.Execute(&buf, row); err != nil {
			return err
		}
		buf.WriteByte('\n')
	}
	_, err = w.Write(buf.Bytes())
	return err
}
