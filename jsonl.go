package sheet

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, s *Sheet) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, row := range s.rows() {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
