// Package publication converts parsed BibTeX entries into the records
// served to the publications page.
package publication

import "sort"

// Author is one author of a publication, with an optional profile URL.
type Author struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Publication is the canonical output record for one citation entry.
// Every string field is normalized; empty means the source had nothing.
// Year 0 means the year is unknown, not that anything failed.
type Publication struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Authors []Author `json:"authors"`
	Venue   string   `json:"venue"`
	Year    int      `json:"year"`
	URL     string   `json:"url"`
	DOI     string   `json:"doi"`
	ArXiv   string   `json:"arxiv"`
	PDF     string   `json:"pdf"`
	Code    string   `json:"code"`
	// Link is the derived primary link: URL if present, else the DOI
	// resolver URL, else empty. URL and DOI stay exposed separately.
	Link    string   `json:"link"`
}

// Sort orders publications newest-first: descending by year, then
// descending by title among ties. Unknown years (0) sort last.
func Sort(pubs []Publication) {
	sort.SliceStable(pubs, func(i, j int) bool {
		if pubs[i].Year != pubs[j].Year {
			return pubs[i].Year > pubs[j].Year
		}
		return pubs[i].Title > pubs[j].Title
	})
}
