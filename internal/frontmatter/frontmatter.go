// Package frontmatter reads the YAML header of Markdown and MDX sources.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

var utf8BOM = []byte("\xef\xbb\xbf")

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Document is a source file split into decoded frontmatter and body.
type Document struct {
	// Fields holds the decoded frontmatter; empty (never nil) when there is none.
	Fields map[string]any

	// Body is the content after the closing delimiter.
	Body []byte

	// HasFrontmatter reports whether a frontmatter block was present, even an empty one.
	HasFrontmatter bool
}

// Parse splits content and decodes its frontmatter. Both LF and CRLF line endings
// are accepted.
func Parse(content []byte) (*Document, error) {
	raw, body, had, err := Split(content)
	if err != nil {
		return nil, err
	}
	fields, err := ParseYAML(raw)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return &Document{Fields: fields, Body: body, HasFrontmatter: had}, nil
}

// Split separates YAML frontmatter (`---` delimited) from the body.
//
// If the document does not start with a delimiter line, had is false and body is the
// full input. The closing delimiter may be the last line of the file.
func Split(content []byte) (raw, body []byte, had bool, err error) {
	content = bytes.TrimPrefix(content, utf8BOM)

	first, _ := nextLine(content)
	if !isDelimiter(first) {
		return nil, content, false, nil
	}

	start := len(first)
	for pos := start; pos < len(content); {
		line, _ := nextLine(content[pos:])
		if isDelimiter(line) {
			return content[start:pos], content[pos+len(line):], true, nil
		}
		pos += len(line)
	}
	return nil, nil, false, ErrMissingClosingDelimiter
}

// ParseYAML parses raw YAML frontmatter (without --- delimiters) into a map.
func ParseYAML(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// nextLine returns the first line of b including its line ending, and the remainder.
func nextLine(b []byte) (line, rest []byte) {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return b[:i+1], b[i+1:]
	}
	return b, nil
}

func isDelimiter(line []byte) bool {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return string(bytes.TrimRight(line, " \t")) == delimiter
}
