package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat    = errors.New("unsupported format")
	ErrUnsupportedBorder    = errors.New("unsupported border style")
	ErrUnsupportedWidthMode = errors.New("unsupported width mode")
	ErrInvalidTemplate      = errors.New("invalid template")
)

// Format represents an output format.
type Format string

const (
	Table    Format = "table"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Table, CSV, TSV, Markdown, HTML, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each row using a Go text/template.
// The template's dot is the row as a []string, so {{index . 0}} is the first
// cell. Each row is written on its own line.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format name. It also accepts go-template=<tmpl>
// strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders s in format f and writes it to w.
func Write(w io.Writer, f Format, s *Sheet) error {
	switch f {
	case Table:
		return s.Draw(w)
	case CSV:
		return writeCSV(w, s)
	case TSV:
		return writeTSV(w, s)
	case Markdown:
		return writeMarkdown(w, s)
	case HTML:
		return writeHTML(w, s)
	case JSON:
		return writeJSON(w, s)
	case JSONL:
		return writeJSONL(w, s)
	case YAML:
		return writeYAML(w, s)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, s)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders s in format f and returns the bytes.
func Marshal(f Format, s *Sheet) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rows returns every row within the bounds, each padded to Cols() cells.
func (s *Sheet) rows() [][]string {
	out := make([][]string, s.Rows())
	for r := range out {
		out[r] = s.Row(r)
	}
	return out
}
