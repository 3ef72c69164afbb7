package sheet

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, s *Sheet) error {
	cw := csv.NewWriter(w)
	for _, row := range s.rows() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
