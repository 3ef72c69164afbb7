package sheet

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, s *Sheet) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(s.rows())
}
