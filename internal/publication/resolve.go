package publication

import (
	"fmt"
	"strings"

	"github.com/seqlab/pubsite/internal/bibtex"
	"github.com/seqlab/pubsite/internal/normalize"
)

// URL templates for external identifiers.
const (
	urlTemplateArXiv = "https://arxiv.org/abs/%s"
	urlTemplateDOI   = "https://doi.org/%s"
)

// ResolveArXiv derives an arXiv abstract URL from an entry's optional
// identifier fields. Priority, first match wins:
//
//  1. a custom "arxiv" field holding the identifier directly
//  2. an "eprint" field with archivePrefix equal to "arxiv"
//  3. an "eprint" field with a note that mentions arXiv
//
// Most entries have none of these; the empty string is the normal result.
func ResolveArXiv(entry bibtex.Entry) string {
	if id := normalize.Clean(entry.Field("arxiv")); id != "" {
		return fmt.Sprintf(urlTemplateArXiv, id)
	}

	eprint := normalize.Clean(entry.Field("eprint"))
	if eprint == "" {
		return ""
	}

	prefix := strings.ToLower(normalize.Clean(entry.Field("archivePrefix")))
	if prefix == "arxiv" {
		return fmt.Sprintf(urlTemplateArXiv, eprint)
	}

	note := strings.ToLower(normalize.Clean(entry.Field("note")))
	if strings.Contains(note, "arxiv") {
		return fmt.Sprintf(urlTemplateArXiv, eprint)
	}

	return ""
}

// PrimaryLink picks the record's main external link: the explicit URL
// when present, else the DOI resolver URL, else nothing.
func PrimaryLink(url, doi string) string {
	if url != "" {
		return url
	}
	if doi != "" {
		return fmt.Sprintf(urlTemplateDOI, doi)
	}
	return ""
}
