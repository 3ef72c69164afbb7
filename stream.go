package sheet

import "iter"

// FromRows builds a sheet from a sequence of rows. The nth yielded row is
// stored at row index n. An empty row stores nothing, so it only shows up
// when a later row extends the bounds past it.
func FromRows(seq iter.Seq[[]string]) *Sheet {
	s := New()
	row := 0
	for cells := range seq {
		s.SetRow(row, cells...)
		row++
	}
	return s
}

// FromCells builds a sheet from a sequence of positioned cells.
func FromCells(seq iter.Seq2[Position, string]) *Sheet {
	s := New()
	for pos, text := range seq {
		s.Set(pos, text)
	}
	return s
}

// FromChan builds a sheet from rows received on ch until it is closed.
// It is a thin wrapper around [FromRows].
func FromChan(ch <-chan []string) *Sheet {
	return FromRows(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
