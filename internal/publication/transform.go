package publication

import (
	"github.com/seqlab/pubsite/internal/authorlinks"
	"github.com/seqlab/pubsite/internal/bibtex"
	"github.com/seqlab/pubsite/internal/normalize"
)

// venueFields lists the fields consulted for a venue, in priority order.
var venueFields = []string{"journal", "booktitle", "publisher", "institution"}

// Transform converts one BibTeX entry into a Publication. It never fails:
// missing or malformed fields degrade to empty strings, an empty author
// list, or year 0, and every entry yields exactly one record.
func Transform(entry bibtex.Entry, links authorlinks.Table) Publication {
	names := normalize.SplitAuthors(entry.Field("author"))
	authors := make([]Author, 0, len(names))
	for _, name := range names {
		authors = append(authors, Author{Name: name, URL: links.Resolve(name)})
	}

	url := normalize.Clean(entry.Field("url"))
	doi := normalize.Clean(entry.Field("doi"))

	return Publication{
		ID:      entry.Key,
		Type:    entry.Type,
		Title:   normalize.Clean(entry.Field("title")),
		Authors: authors,
		Venue:   venue(entry),
		Year:    normalize.ParseYear(entry.Field("year")),
		URL:     url,
		DOI:     doi,
		ArXiv:   ResolveArXiv(entry),
		PDF:     normalize.Clean(entry.Field("pdf")),
		Code:    normalize.Clean(entry.Field("code")),
		Link:    PrimaryLink(url, doi),
	}
}

// venue returns the first non-empty venue field in priority order.
func venue(entry bibtex.Entry) string {
	for _, field := range venueFields {
		if v := normalize.Clean(entry.Field(field)); v != "" {
			return v
		}
	}
	return ""
}
