package sheet

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Position addresses one cell. Row and Col are zero-indexed.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position { return Position{Row: row, Col: col} }

// WidthMode controls how cell text is measured for column widths.
type WidthMode int

const (
	WidthBytes   WidthMode = iota // len(text), stored length
	WidthDisplay                  // terminal columns via go-runewidth
)

// Sheet is a sparse grid of text cells. Its bounds grow to cover every
// position ever set and never shrink. Every coordinate within the bounds is a
// cell; positions that were never set render as empty.
//
// A Sheet is not safe for concurrent use. All calls to Set must finish
// before the Sheet is rendered.
type Sheet struct {
	cells  map[Position]string
	maxRow int
	maxCol int

	border BorderStyle
	width  WidthMode
}

// New returns an empty Sheet with bounds (0, 0), heavy borders, and byte
// widths.
func New() *Sheet {
	return &Sheet{
		cells:  make(map[Position]string),
		border: BorderHeavy,
		width:  WidthBytes,
	}
}

// Set stores text at pos, replacing any previous value, and grows the bounds
// to cover pos. Set panics on a negative coordinate.
func (s *Sheet) Set(pos Position, text string) {
	if pos.Row < 0 || pos.Col < 0 {
		panic(fmt.Sprintf("sheet: negative position (%d, %d)", pos.Row, pos.Col))
	}
	s.maxRow = max(s.maxRow, pos.Row)
	s.maxCol = max(s.maxCol, pos.Col)
	s.cells[pos] = text
}

// Get returns the text stored at pos and whether a value was set there.
func (s *Sheet) Get(pos Position) (string, bool) {
	text, ok := s.cells[pos]
	return text, ok
}

// Bounds returns the largest row and column index covered by the sheet.
func (s *Sheet) Bounds() (maxRow, maxCol int) { return s.maxRow, s.maxCol }

// Rows returns the number of rows rendered.
func (s *Sheet) Rows() int { return s.maxRow + 1 }

// Cols returns the number of columns rendered.
func (s *Sheet) Cols() int { return s.maxCol + 1 }

// Len returns the number of stored cells.
func (s *Sheet) Len() int { return len(s.cells) }

// Empty reports whether Set was never called. An empty sheet still renders
// as a single blank cell.
func (s *Sheet) Empty() bool { return len(s.cells) == 0 }

// SetRow stores cells left to right starting at column 0 of row.
func (s *Sheet) SetRow(row int, cells ...string) {
	for col, text := range cells {
		s.Set(Position{Row: row, Col: col}, text)
	}
}

// AppendRow stores cells in the row below the current last row, or in row 0
// when the sheet is empty.
func (s *Sheet) AppendRow(cells ...string) {
	row := 0
	if !s.Empty() {
		row = s.maxRow + 1
	}
	s.SetRow(row, cells...)
}

// Row returns the text of every column in row r, with "" for unset cells.
func (s *Sheet) Row(r int) []string {
	out := make([]string, s.Cols())
	for c := range out {
		out[c] = s.cells[Position{Row: r, Col: c}]
	}
	return out
}

// Border returns the border style used by Draw.
func (s *Sheet) Border() BorderStyle { return s.border }

// SetBorder sets the border style used by Draw.
func (s *Sheet) SetBorder(b BorderStyle) { s.border = b }

// WidthMode returns how cell text is measured.
func (s *Sheet) WidthMode() WidthMode { return s.width }

// SetWidthMode sets how cell text is measured.
func (s *Sheet) SetWidthMode(m WidthMode) { s.width = m }

// Widths returns the width of each column: the longest measured text among
// the cells set in that column, or 0 if none was set.
func (s *Sheet) Widths() []int {
	widths := make([]int, s.Cols())
	for r := 0; r <= s.maxRow; r++ {
		for c := range widths {
			text, ok := s.cells[Position{Row: r, Col: c}]
			if !ok {
				continue
			}
			if w := s.measure(text); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

func (s *Sheet) measure(text string) int {
	return measure(s.width, text)
}

func measure(m WidthMode, text string) int {
	if m == WidthDisplay {
		return runewidth.StringWidth(text)
	}
	return len(text)
}
