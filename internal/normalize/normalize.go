// Package normalize cleans raw BibTeX field text into plain strings.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	digitRun      = regexp.MustCompile(`[0-9]+`)
	authorSep     = regexp.MustCompile(`\s+and\s+`)
)

// Clean normalizes raw field text: non-breaking spaces become ordinary
// spaces, braces (capitalization protection, no semantic content) are
// removed, whitespace runs collapse to a single space, and the result is
// trimmed. Cleaning an already-clean string returns it unchanged.
func Clean(raw string) string {
	s := strings.ReplaceAll(raw, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\u202f", " ")
	s = strings.ReplaceAll(s, "{", "")
	s = strings.ReplaceAll(s, "}", "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CleanName cleans a single author name. Beyond Clean, it strips one
// trailing comma left behind when an author list is split on "and"
// (e.g. "Kim, Jaehyun," before the separator).
func CleanName(raw string) string {
	s := Clean(raw)
	s = strings.TrimSuffix(s, ",")
	return strings.TrimSpace(s)
}

// SplitAuthors splits a raw BibTeX author field into individual names.
// The separator is the word "and" surrounded by whitespace, which may
// include newlines inside the field. Source order is citation order and
// is preserved. An empty field yields no names.
func SplitAuthors(raw string) []string {
	cleaned := Clean(raw)
	if cleaned == "" {
		return nil
	}

	var names []string
	for _, part := range authorSep.Split(cleaned, -1) {
		name := CleanName(part)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// ParseYear extracts a 4-digit year from raw field text. It returns the
// first run of exactly four consecutive digits ("2025a" and "{2025}" both
// give 2025), falling back to parsing the whole cleaned string as an
// integer. Anything unparseable returns 0, the unknown-year sentinel;
// malformed year data never fails the run.
func ParseYear(raw string) int {
	cleaned := Clean(raw)
	if cleaned == "" {
		return 0
	}

	for _, run := range digitRun.FindAllString(cleaned, -1) {
		if len(run) == 4 {
			year, err := strconv.Atoi(run)
			if err == nil {
				return year
			}
		}
	}

	year, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return year
}
