// Package pdfcheck cross-checks publication records against the local PDF
// files their pdf fields point at.
package pdfcheck

import (
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/seqlab/pubsite/internal/publication"
)

// DOIs look like 10.XXXX/suffix with a 4-9 digit registrant code.
var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

// doiSearchPages bounds how deep into a PDF the DOI search goes; the DOI
// is almost always on the first page.
const doiSearchPages = 3

// Issue is one problem found while checking a record's pdf field.
type Issue struct {
	ID     string `json:"id"`
	PDF    string `json:"pdf"`
	Reason string `json:"reason"`
}

// Check inspects every record with a non-empty pdf field. A pdf path that
// cannot be opened, or a PDF whose embedded DOI disagrees with the
// record's doi field, produces an Issue. Records without a pdf field are
// skipped; a PDF with no detectable DOI is fine.
func Check(pubs []publication.Publication) []Issue {
	var issues []Issue
	for _, pub := range pubs {
		if pub.PDF == "" {
			continue
		}

		embedded, err := ExtractDOI(pub.PDF)
		if err != nil {
			issues = append(issues, Issue{
				ID:     pub.ID,
				PDF:    pub.PDF,
				Reason: "unreadable PDF: " + err.Error(),
			})
			continue
		}

		if embedded != "" && pub.DOI != "" && !EqualDOI(embedded, pub.DOI) {
			issues = append(issues, Issue{
				ID:     pub.ID,
				PDF:    pub.PDF,
				Reason: "PDF contains DOI " + embedded + ", record has " + pub.DOI,
			})
		}
	}
	return issues
}

// ExtractDOI returns the first DOI found in the opening pages of a PDF,
// or the empty string when none is present.
func ExtractDOI(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	maxPages := doiSearchPages
	if r.NumPage() < maxPages {
		maxPages = r.NumPage()
	}

	for i := 1; i <= maxPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if doi := findDOI(text); doi != "" {
			return doi, nil
		}
	}
	return "", nil
}

// findDOI picks the first plausible DOI out of free text.
func findDOI(text string) string {
	for _, match := range doiPattern.FindAllString(text, -1) {
		match = strings.TrimRight(match, ".,;:)")
		if strings.Index(match, "/") < len(match)-1 {
			return match
		}
	}
	return ""
}

// EqualDOI compares two DOIs ignoring resolver prefixes and case.
func EqualDOI(a, b string) bool {
	return canonicalDOI(a) == canonicalDOI(b)
}

func canonicalDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	for _, prefix := range []string{
		"https://doi.org/", "http://doi.org/", "doi.org/", "DOI:", "doi:",
	} {
		doi = strings.TrimPrefix(doi, prefix)
	}
	return strings.ToLower(doi)
}
