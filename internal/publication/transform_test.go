package publication

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/seqlab/pubsite/internal/authorlinks"
	"github.com/seqlab/pubsite/internal/bibtex"
)

func TestTransform(t *testing.T) {
	entry := bibtex.Entry{
		Key:  "Kim2025-ml",
		Type: "article",
		Fields: map[string]string{
			"title":   "{Protein} Design with\n  Deep Learning",
			"author":  "Kim, Jaehyun\nand Shin, Cheolmin",
			"journal": "Nature Methods",
			"year":    "2025a",
			"url":     "https://example.org/paper",
			"doi":     "10.1234/abc",
			"eprint":  "2501.01234",
			"note":    "also on arXiv",
			"pdf":     "papers/kim2025.pdf",
			"code":    "https://github.com/example/proteins",
		},
	}
	links := authorlinks.Table{"Kim, Jaehyun": "https://example.edu/~jkim"}

	got := Transform(entry, links)

	want := Publication{
		ID:    "Kim2025-ml",
		Type:  "article",
		Title: "Protein Design with Deep Learning",
		Authors: []Author{
			{Name: "Kim, Jaehyun", URL: "https://example.edu/~jkim"},
			{Name: "Shin, Cheolmin", URL: ""},
		},
		Venue: "Nature Methods",
		Year:  2025,
		URL:   "https://example.org/paper",
		DOI:   "10.1234/abc",
		ArXiv: "https://arxiv.org/abs/2501.01234",
		PDF:   "papers/kim2025.pdf",
		Code:  "https://github.com/example/proteins",
		Link:  "https://example.org/paper",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Transform() = %+v, want %+v", got, want)
	}
}

func TestTransformVenuePriority(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{
			name: "journal beats booktitle",
			fields: map[string]string{
				"journal":   "Nature",
				"booktitle": "Proceedings of X",
			},
			want: "Nature",
		},
		{
			name: "booktitle beats publisher",
			fields: map[string]string{
				"booktitle": "Proceedings of X",
				"publisher": "Springer",
			},
			want: "Proceedings of X",
		},
		{
			name:   "publisher beats institution",
			fields: map[string]string{"publisher": "Springer", "institution": "MIT"},
			want:   "Springer",
		},
		{
			name:   "institution as last resort",
			fields: map[string]string{"institution": "MIT"},
			want:   "MIT",
		},
		{
			name:   "no venue fields",
			fields: map[string]string{"title": "T"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform(entryWith(tt.fields), nil)
			if got.Venue != tt.want {
				t.Errorf("Venue = %q, want %q", got.Venue, tt.want)
			}
		})
	}
}

func TestTransformSparseEntry(t *testing.T) {
	// Even an entry with no usable fields produces a record.
	got := Transform(bibtex.Entry{Key: "bare", Type: "misc"}, nil)

	if got.ID != "bare" || got.Type != "misc" {
		t.Errorf("identity fields = %q, %q", got.ID, got.Type)
	}
	if got.Year != 0 {
		t.Errorf("Year = %d, want 0", got.Year)
	}
	if len(got.Authors) != 0 {
		t.Errorf("Authors = %v, want empty", got.Authors)
	}
	if got.Link != "" {
		t.Errorf("Link = %q, want empty", got.Link)
	}
}

func TestTransformDOIOnlyLink(t *testing.T) {
	got := Transform(entryWith(map[string]string{"doi": "10.5/xy"}), nil)
	if got.Link != "https://doi.org/10.5/xy" {
		t.Errorf("Link = %q, want DOI fallback", got.Link)
	}
	if got.DOI != "10.5/xy" {
		t.Errorf("DOI = %q, raw field must survive", got.DOI)
	}
}

func TestAuthorsMarshalAsArray(t *testing.T) {
	// An author-less record must serialize authors as [], not null.
	pub := Transform(bibtex.Entry{Key: "x", Type: "misc"}, nil)
	data, err := json.Marshal(pub)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"authors":[]`) {
		t.Errorf("marshaled record = %s, want authors as []", data)
	}
}

func TestSort(t *testing.T) {
	pubs := []Publication{
		{ID: "a", Year: 2024, Title: "Alpha"},
		{ID: "b", Year: 0, Title: "Unknown"},
		{ID: "c", Year: 2025, Title: "Gamma"},
		{ID: "d", Year: 2025, Title: "Beta"},
	}

	Sort(pubs)

	gotIDs := make([]string, len(pubs))
	for i, p := range pubs {
		gotIDs[i] = p.ID
	}
	// 2025 first with titles descending, then 2024, unknown year last.
	want := []string{"c", "d", "a", "b"}
	if !reflect.DeepEqual(gotIDs, want) {
		t.Errorf("Sort order = %v, want %v", gotIDs, want)
	}
}

func TestSortYearsDescending(t *testing.T) {
	pubs := []Publication{
		{ID: "y2024", Year: 2024},
		{ID: "y2025", Year: 2025},
		{ID: "y0", Year: 0},
	}
	Sort(pubs)
	want := []string{"y2025", "y2024", "y0"}
	for i, p := range pubs {
		if p.ID != want[i] {
			t.Fatalf("Sort order[%d] = %s, want %s", i, p.ID, want[i])
		}
	}
}
