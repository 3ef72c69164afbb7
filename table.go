package sheet

import (
	"fmt"
	"io"
	"strings"
)

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderHeavy   BorderStyle = iota // ┏━┓┗┛┃┳┻┣┫╋
	BorderRounded                    // ╭─╮╰╯│┬┴├┤┼
	BorderASCII                      // +-+|
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
	BorderNone                       // No borders, space-separated columns
)

var borderNames = map[BorderStyle]string{
	BorderHeavy:   "heavy",
	BorderRounded: "rounded",
	BorderASCII:   "ascii",
	BorderDouble:  "double",
	BorderNone:    "none",
}

// String returns the border style name accepted by ParseBorder.
func (b BorderStyle) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// ParseBorder parses a border style name.
func ParseBorder(s string) (BorderStyle, error) {
	for b, name := range borderNames {
		if name == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBorder, s)
}

// String returns the width mode name accepted by ParseWidthMode.
func (m WidthMode) String() string {
	switch m {
	case WidthBytes:
		return "bytes"
	case WidthDisplay:
		return "display"
	default:
		return fmt.Sprintf("WidthMode(%d)", int(m))
	}
}

// ParseWidthMode parses "bytes" or "display".
func ParseWidthMode(s string) (WidthMode, error) {
	switch s {
	case "bytes":
		return WidthBytes, nil
	case "display":
		return WidthDisplay, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedWidthMode, s)
	}
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// Draw renders the sheet as a bordered table and writes it to w in a single
// Write call. Every row is drawn with the same rules; there is no header row.
// The only error returned is the one from w.
func (s *Sheet) Draw(w io.Writer) error {
	_, err := w.Write([]byte(s.String()))
	return err
}

// String returns the table rendering produced by Draw.
func (s *Sheet) String() string {
	var sb strings.Builder
	widths := s.Widths()
	if s.border == BorderNone {
		s.renderPlain(&sb, widths)
	} else {
		s.renderBordered(&sb, widths)
	}
	return sb.String()
}

func (s *Sheet) renderBordered(sb *strings.Builder, widths []int) {
	bc, ok := borderSets[s.border]
	if !ok {
		bc = borderSets[BorderHeavy]
	}

	drawHLine(sb, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight)
	for r := 0; r <= s.maxRow; r++ {
		s.drawRow(sb, r, widths, bc.vertical)
		if r < s.maxRow {
			drawHLine(sb, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee)
		} else {
			drawHLine(sb, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
		}
	}
}

// drawHLine writes one full-width border line. Each column gets width+2 fill
// characters to cover the padding space on either side of the cell text.
func drawHLine(sb *strings.Builder, widths []int, left, fill, mid, right string) {
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	sb.WriteByte('\n')
}

func (s *Sheet) drawRow(sb *strings.Builder, r int, widths []int, vert string) {
	sb.WriteString(vert)
	for c, width := range widths {
		sb.WriteByte(' ')
		sb.WriteString(s.padCell(s.cells[Position{Row: r, Col: c}], width))
		sb.WriteByte(' ')
		sb.WriteString(vert)
	}
	sb.WriteByte('\n')
}

// --- Plain table (BorderNone) ---

func (s *Sheet) renderPlain(sb *strings.Builder, widths []int) {
	parts := make([]string, len(widths))
	for r := 0; r <= s.maxRow; r++ {
		for c, width := range widths {
			parts[c] = s.padCell(s.cells[Position{Row: r, Col: c}], width)
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		sb.WriteByte('\n')
	}
}

func (s *Sheet) padCell(text string, width int) string {
	return padRight(text, width, s.width)
}

func padRight(text string, width int, m WidthMode) string {
	pad := width - measure(m, text)
	if pad <= 0 {
		return text
	}
	return text + strings.Repeat(" ", pad)
}
