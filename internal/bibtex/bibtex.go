// Package bibtex parses BibTeX bibliography files into entries.
//
// The parser is deliberately small: it understands @type{key, field = value}
// entries with braced, quoted, or bare values, and skips everything else
// (@comment, @string, @preamble, and free text between entries). Field
// values are returned raw; cleanup is the caller's concern.
package bibtex

import (
	"fmt"
	"os"
	"strings"
)

// Entry is one citation record from a .bib file.
type Entry struct {
	Key    string            // Citation key, e.g. "Kim2025-ml"
	Type   string            // Entry type, e.g. "article" (lowercased)
	Fields map[string]string // Field name (lowercased) to raw value
}

// Field returns the raw value of a field, looked up case-insensitively.
// Missing fields return the empty string.
func (e Entry) Field(name string) string {
	return e.Fields[strings.ToLower(name)]
}

// ParseFile reads and parses a .bib file. A missing file is an error here;
// the caller decides whether that is fatal.
func ParseFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return entries, nil
}

// Parse parses BibTeX source into entries, in source order.
func Parse(data []byte) ([]Entry, error) {
	p := &parser{src: string(data)}
	var entries []Entry

	for {
		if !p.seekEntry() {
			return entries, nil
		}
		entry, skip, err := p.readEntry()
		if err != nil {
			return nil, err
		}
		if !skip {
			entries = append(entries, entry)
		}
	}
}

type parser struct {
	src string
	pos int
}

// seekEntry advances to the next '@' and reports whether one was found.
func (p *parser) seekEntry() bool {
	for p.pos < len(p.src) {
		if p.src[p.pos] == '@' {
			return true
		}
		p.pos++
	}
	return false
}

// readEntry parses one @type{...} block. skip is true for directive blocks
// (@comment, @string, @preamble) that produce no entry.
func (p *parser) readEntry() (entry Entry, skip bool, err error) {
	p.pos++ // consume '@'
	entryType := strings.ToLower(p.readIdent())
	p.skipSpace()

	if p.pos >= len(p.src) || p.src[p.pos] != '{' {
		return Entry{}, false, fmt.Errorf("entry @%s: expected '{'", entryType)
	}

	switch entryType {
	case "comment", "string", "preamble":
		if err := p.skipBraced(); err != nil {
			return Entry{}, false, fmt.Errorf("directive @%s: %w", entryType, err)
		}
		return Entry{}, true, nil
	}

	p.pos++ // consume '{'
	keyStart := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != ',' && p.src[p.pos] != '}' {
		p.pos++
	}
	key := strings.TrimSpace(p.src[keyStart:p.pos])
	if p.pos >= len(p.src) {
		return Entry{}, false, fmt.Errorf("entry @%s{%s: unterminated", entryType, key)
	}

	entry = Entry{Key: key, Type: entryType, Fields: make(map[string]string)}

	if p.src[p.pos] == '}' { // entry with no fields
		p.pos++
		return entry, false, nil
	}
	p.pos++ // consume ','

	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return Entry{}, false, fmt.Errorf("entry %s: unterminated", key)
		}
		if p.src[p.pos] == '}' {
			p.pos++
			return entry, false, nil
		}
		if p.src[p.pos] == ',' {
			p.pos++
			continue
		}

		name := strings.ToLower(p.readIdent())
		if name == "" {
			return Entry{}, false, fmt.Errorf("entry %s: expected field name at offset %d", key, p.pos)
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != '=' {
			return Entry{}, false, fmt.Errorf("entry %s: field %s: expected '='", key, name)
		}
		p.pos++ // consume '='

		value, err := p.readValue()
		if err != nil {
			return Entry{}, false, fmt.Errorf("entry %s: field %s: %w", key, name, err)
		}
		entry.Fields[name] = value
	}
}

// readValue parses a field value: {braced} with nesting, "quoted", or bare.
// Outer delimiters are stripped; inner content is returned verbatim.
func (p *parser) readValue() (string, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return "", fmt.Errorf("unterminated value")
	}

	switch p.src[p.pos] {
	case '{':
		start := p.pos + 1
		if err := p.skipBraced(); err != nil {
			return "", err
		}
		return p.src[start : p.pos-1], nil
	case '"':
		p.pos++
		start := p.pos
		for p.pos < len(p.src) && p.src[p.pos] != '"' {
			p.pos++
		}
		if p.pos >= len(p.src) {
			return "", fmt.Errorf("unterminated quoted value")
		}
		p.pos++
		return p.src[start : p.pos-1], nil
	default:
		// Bare value: number or macro name, up to ',' or '}'.
		start := p.pos
		for p.pos < len(p.src) && p.src[p.pos] != ',' && p.src[p.pos] != '}' {
			p.pos++
		}
		return strings.TrimSpace(p.src[start:p.pos]), nil
	}
}

// skipBraced consumes a balanced {...} group, leaving pos just past the
// closing brace. pos must be at the opening brace.
func (p *parser) skipBraced() error {
	depth := 0
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				p.pos++
				return nil
			}
		}
		p.pos++
	}
	return fmt.Errorf("unbalanced braces")
}

func (p *parser) readIdent() string {
	start := p.pos
	for p.pos < len(p.src) && isIdentChar(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_' || c == '-'
}
