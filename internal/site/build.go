// Package site runs the full bibliography-to-JSON build.
package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seqlab/pubsite/internal/authorlinks"
	"github.com/seqlab/pubsite/internal/bibtex"
	"github.com/seqlab/pubsite/internal/config"
	"github.com/seqlab/pubsite/internal/publication"
)

// Result reports what a successful build produced.
type Result struct {
	Count   int    `json:"count"`
	OutPath string `json:"out"`
}

// Build reads the bibliography, transforms every entry, sorts the records
// newest-first, and writes the JSON output file. A missing bibliography is
// the one fatal condition and is reported before any output is created;
// per-entry data problems never fail the build.
func Build(cfg *config.Config) (*Result, error) {
	entries, err := bibtex.ParseFile(cfg.BibPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("bibliography not found: %s", cfg.BibPath)
		}
		return nil, err
	}

	links, err := authorlinks.Load(cfg.LinksPath)
	if err != nil {
		return nil, err
	}

	pubs := Records(entries, links)

	if err := writeJSON(cfg.OutPath, pubs); err != nil {
		return nil, err
	}

	return &Result{Count: len(pubs), OutPath: cfg.OutPath}, nil
}

// Records transforms entries into sorted publication records. Split out
// from Build so the check command can reuse the in-memory pipeline.
func Records(entries []bibtex.Entry, links authorlinks.Table) []publication.Publication {
	pubs := make([]publication.Publication, 0, len(entries))
	for _, entry := range entries {
		pubs = append(pubs, publication.Transform(entry, links))
	}
	publication.Sort(pubs)
	return pubs
}

// writeJSON writes the records as an indented UTF-8 JSON array. Non-ASCII
// text is emitted literally, not escaped.
func writeJSON(path string, pubs []publication.Publication) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(pubs); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
