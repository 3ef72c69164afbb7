package chip

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed chips.json
var defaultDataset []byte

// Default returns the registry built from the embedded dataset.
func Default() (*Registry, error) {
	return Decode(defaultDataset, ".json")
}

// Load reads a dataset file. Files ending in .yaml or .yml are decoded as
// YAML; anything else as JSON. An empty path loads the embedded dataset.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return Decode(data, filepath.Ext(path))
}

// Decode parses a dataset: a top-level list of chip records. ext selects the
// decoder the way a file extension would.
func Decode(data []byte, ext string) (*Registry, error) {
	var chips []Chip
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &chips); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
		}
	default:
		if err := json.Unmarshal(data, &chips); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
		}
	}
	return NewRegistry(chips)
}
