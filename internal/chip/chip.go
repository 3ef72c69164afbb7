// Package chip holds the xChip reference dataset and projects it into sheets.
package chip

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/bjaus/sheet"
	"github.com/gobwas/glob"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNotFound       = errors.New("no entry for chip name")
	ErrInvalidDataset = errors.New("invalid chip dataset")
	ErrInvalidPattern = errors.New("invalid filter pattern")
)

// maxSuggestDistance is the largest edit distance offered as a suggestion.
const maxSuggestDistance = 3

// Chip is one xChip module record.
type Chip struct {
	Name        string `json:"name" yaml:"name"`
	Classname   string `json:"classname" yaml:"classname"`
	GithubRepo  string `json:"github_repository" yaml:"github_repository"`
	HeaderSrc   string `json:"header_src" yaml:"header_src"`
	Description string `json:"description" yaml:"description"`
	ProductPage string `json:"product_page" yaml:"product_page"`
}

// Field is a labeled value shown in a chip's detail table.
type Field struct {
	Label string
	Value string
}

// Fields returns the chip's fields in display order.
func (c Chip) Fields() []Field {
	return []Field{
		{Label: "Name", Value: c.Name},
		{Label: "Description", Value: c.Description},
		{Label: "GitHub Repo", Value: c.GithubRepo},
		{Label: "Header Source", Value: c.HeaderSrc},
		{Label: "Product Page", Value: c.ProductPage},
		{Label: "C++ Class Name", Value: c.Classname},
	}
}

// Sheet lays the chip out as two columns: field label and value.
func (c Chip) Sheet() *sheet.Sheet {
	s := sheet.New()
	for i, f := range c.Fields() {
		s.Set(sheet.Pos(i, 0), f.Label)
		s.Set(sheet.Pos(i, 1), f.Value)
	}
	return s
}

// ListSheet lays chips out as a "Chip Name" / "Description" table with a
// header row.
func ListSheet(chips []Chip) *sheet.Sheet {
	s := sheet.New()
	s.Set(sheet.Pos(0, 0), "Chip Name")
	s.Set(sheet.Pos(0, 1), "Description")
	for i, c := range chips {
		s.Set(sheet.Pos(i+1, 0), c.Name)
		s.Set(sheet.Pos(i+1, 1), c.Description)
	}
	return s
}

// Registry is a read-only, ordered collection of chips.
type Registry struct {
	chips []Chip
	index map[string]int // lower-cased name -> position in chips
}

// NewRegistry validates chips and indexes them by name. Every chip needs a
// name, and names must be unique ignoring case.
func NewRegistry(chips []Chip) (*Registry, error) {
	r := &Registry{
		chips: slices.Clone(chips),
		index: make(map[string]int, len(chips)),
	}
	for i, c := range r.chips {
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if key == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidDataset, i)
		}
		if prev, ok := r.index[key]; ok {
			return nil, fmt.Errorf("%w: entries %d and %d are both named %q", ErrInvalidDataset, prev, i, c.Name)
		}
		r.index[key] = i
	}
	return r, nil
}

// All returns a copy of every chip in dataset order.
func (r *Registry) All() []Chip {
	return slices.Clone(r.chips)
}

// Len returns the number of chips.
func (r *Registry) Len() int { return len(r.chips) }

// Find looks a chip up by name, ignoring case. On a miss the error wraps
// ErrNotFound and names the closest match when there is one.
func (r *Registry) Find(name string) (Chip, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if i, ok := r.index[key]; ok {
		return r.chips[i], nil
	}
	if s, ok := r.Suggest(key); ok {
		return Chip{}, fmt.Errorf("%w `%s` (did you mean %s?)", ErrNotFound, key, s)
	}
	return Chip{}, fmt.Errorf("%w `%s`", ErrNotFound, key)
}

// Suggest returns the chip name closest to name by edit distance, ignoring
// case, if it is within a few edits.
func (r *Registry) Suggest(name string) (string, bool) {
	key := strings.ToLower(name)
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range r.chips {
		if d := levenshtein.ComputeDistance(key, strings.ToLower(c.Name)); d < bestDist {
			best, bestDist = c.Name, d
		}
	}
	return best, best != ""
}

// Filter returns the chips whose names match the glob pattern, ignoring
// case. An empty pattern matches every chip.
func (r *Registry) Filter(pattern string) ([]Chip, error) {
	if pattern == "" {
		return r.All(), nil
	}
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err)
	}
	var out []Chip
	for _, c := range r.chips {
		if g.Match(strings.ToLower(c.Name)) {
			out = append(out, c)
		}
	}
	return out, nil
}
