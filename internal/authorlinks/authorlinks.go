// Package authorlinks maps author names to profile URLs.
package authorlinks

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seqlab/pubsite/internal/normalize"
)

// Table maps a normalized author name to a profile URL. Keys are passed
// through the same name cleanup as citation authors, so lookup is exact
// string match after normalization on both sides.
type Table map[string]string

// Load reads an author-link table from a YAML file containing a flat
// name-to-URL mapping. A missing file is a normal configuration and
// yields an empty table.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Table{}, nil
		}
		return nil, fmt.Errorf("reading author links: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing author links %s: %w", path, err)
	}

	table := make(Table, len(raw))
	for name, url := range raw {
		key := normalize.CleanName(name)
		if key == "" {
			continue
		}
		table[key] = url
	}
	return table, nil
}

// Resolve returns the profile URL for a normalized author name, or the
// empty string when the author has no link. No fuzzy or case-insensitive
// matching: the name must match a normalized table key exactly.
func (t Table) Resolve(name string) string {
	return t[name]
}
