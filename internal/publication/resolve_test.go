package publication

import (
	"testing"

	"github.com/seqlab/pubsite/internal/bibtex"
)

func entryWith(fields map[string]string) bibtex.Entry {
	return bibtex.Entry{Key: "x", Type: "article", Fields: fields}
}

func TestResolveArXiv(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{
			name:   "custom arxiv field",
			fields: map[string]string{"arxiv": "2501.01234"},
			want:   "https://arxiv.org/abs/2501.01234",
		},
		{
			name: "custom field wins over eprint pair",
			fields: map[string]string{
				"arxiv":         "9999.88888",
				"eprint":        "2501.01234",
				"archiveprefix": "arXiv",
			},
			want: "https://arxiv.org/abs/9999.88888",
		},
		{
			name: "eprint with archive prefix",
			fields: map[string]string{
				"eprint":        "2501.01234",
				"archiveprefix": "arXiv",
			},
			want: "https://arxiv.org/abs/2501.01234",
		},
		{
			name: "archive prefix compared case-insensitively",
			fields: map[string]string{
				"eprint":        "2501.01234",
				"archiveprefix": "ARXIV",
			},
			want: "https://arxiv.org/abs/2501.01234",
		},
		{
			name: "archive prefix for another archive",
			fields: map[string]string{
				"eprint":        "2501.01234",
				"archiveprefix": "bioRxiv",
			},
			want: "",
		},
		{
			name: "eprint with arxiv mentioned in note",
			fields: map[string]string{
				"eprint": "2501.01234",
				"note":   "Preprint on arXiv, under review",
			},
			want: "https://arxiv.org/abs/2501.01234",
		},
		{
			name:   "note alone without eprint",
			fields: map[string]string{"note": "see arXiv"},
			want:   "",
		},
		{
			name:   "no identifier fields",
			fields: map[string]string{"title": "Plain Paper"},
			want:   "",
		},
		{
			name:   "braced arxiv field is cleaned",
			fields: map[string]string{"arxiv": "{2501.01234}"},
			want:   "https://arxiv.org/abs/2501.01234",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveArXiv(entryWith(tt.fields))
			if got != tt.want {
				t.Errorf("ResolveArXiv() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrimaryLink(t *testing.T) {
	tests := []struct {
		name string
		url  string
		doi  string
		want string
	}{
		{
			name: "url wins",
			url:  "https://example.org/paper",
			doi:  "10.1234/abc",
			want: "https://example.org/paper",
		},
		{
			name: "doi fallback",
			doi:  "10.1234/abc",
			want: "https://doi.org/10.1234/abc",
		},
		{
			name: "neither",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrimaryLink(tt.url, tt.doi)
			if got != tt.want {
				t.Errorf("PrimaryLink(%q, %q) = %q, want %q", tt.url, tt.doi, got, tt.want)
			}
		})
	}
}
