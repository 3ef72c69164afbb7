package sheet

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, s *Sheet) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s.rows()); err != nil {
		return err
	}
	return enc.Close()
}
