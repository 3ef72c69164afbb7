// Package sheet stores text in a sparse grid and renders it as a bordered,
// column-aligned table.
//
// A [Sheet] maps a [Position] to a string. Its bounds grow to cover every
// position ever set, and every coordinate inside them is a cell, set or not.
// Rendering scans the bounds; it never iterates the underlying map.
//
//	s := sheet.New()
//	s.Set(sheet.Pos(0, 0), "Name")
//	s.Set(sheet.Pos(0, 1), "CI40")
//	s.Draw(os.Stdout)
//
// prints
//
//	┏━━━━━━┳━━━━━━┓
//	┃ Name ┃ CI40 ┃
//	┗━━━━━━┻━━━━━━┛
//
// # Table Rendering
//
// [Sheet.Draw] makes two passes. The first computes each column's width as
// the longest text set in that column. The second emits a top border, then
// each row followed by either a separator or, after the last row, the bottom
// border. All three kinds of border line come from one primitive that takes
// a left, joiner, and right glyph. Cells get one space of padding on each
// side and are left-aligned. The whole table is written with a single Write.
//
// A sheet on which Set was never called has bounds (0, 0) and renders a
// single blank cell. Use [Sheet.Empty] to detect that case.
//
// # Widths
//
// By default a cell's width is its length in bytes ([WidthBytes]), so text
// with multi-byte or wide characters misaligns in a terminal. Set
// [WidthDisplay] with [Sheet.SetWidthMode] to measure terminal columns
// instead.
//
// # Borders
//
// [BorderHeavy] is the default. [BorderRounded], [BorderASCII], and
// [BorderDouble] swap the glyph set; [BorderNone] drops the frame and
// separates columns with two spaces.
//
// # Other Formats
//
// [Write] and [Marshal] emit a sheet as Table, CSV, TSV, Markdown, HTML,
// JSON, JSONL, or YAML. Use [ParseFormat] to convert a CLI flag string into a
// [Format]. Markdown and HTML treat row 0 as the header. [GoTemplate] runs a
// text/template once per row, with the row's cells as the dot.
//
// # Builders
//
// [FromRows], [FromCells], and [FromChan] build a sheet from an iterator or
// a channel.
//
// # Errors
//
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrUnsupportedBorder]: unknown border style name
//   - [ErrUnsupportedWidthMode]: unknown width mode name
//   - [ErrInvalidTemplate]: go-template that fails to parse
package sheet
