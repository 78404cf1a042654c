// Package search provides the storefront search bar and the matcher used to
// narrow and highlight listing results.
package search

import (
	"regexp"
	"strings"
)

// Matcher tests product text against a search query.
// Queries starting with "r:" are treated as regex; otherwise literal.
// Both forms are case-insensitive.
type Matcher struct {
	query string
	regex *regexp.Regexp // nil for an empty or invalid query
}

// Compile builds a Matcher for query. An invalid regex yields a matcher
// that matches nothing and reports Valid() == false.
func Compile(query string) *Matcher {
	m := &Matcher{query: query}

	if strings.HasPrefix(query, "r:") {
		pattern := query[2:]
		if pattern == "" {
			return m
		}
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return m
		}
		m.regex = re
		return m
	}

	if strings.TrimSpace(query) == "" {
		return m
	}
	m.regex = regexp.MustCompile("(?i)" + regexp.QuoteMeta(strings.TrimSpace(query)))
	return m
}

// Query returns the raw query.
func (m *Matcher) Query() string { return m.query }

// Empty reports whether the query restricts nothing.
func (m *Matcher) Empty() bool {
	q := strings.TrimSpace(m.query)
	return q == "" || q == "r:"
}

// Valid reports whether the query compiled. Empty queries are valid.
func (m *Matcher) Valid() bool {
	return m.Empty() || m.regex != nil
}

// Match reports whether any of fields contains the query. An empty query
// matches everything; an invalid one matches nothing.
func (m *Matcher) Match(fields ...string) bool {
	if m.Empty() {
		return true
	}
	if m.regex == nil {
		return false
	}
	for _, f := range fields {
		if m.regex.MatchString(f) {
			return true
		}
	}
	return false
}

// Highlight wraps every match in text with style.
func (m *Matcher) Highlight(text string, style func(string) string) string {
	if m.regex == nil || style == nil {
		return text
	}

	matches := m.regex.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var result strings.Builder
	lastEnd := 0
	for _, match := range matches {
		result.WriteString(text[lastEnd:match[0]])
		result.WriteString(style(text[match[0]:match[1]]))
		lastEnd = match[1]
	}
	result.WriteString(text[lastEnd:])

	return result.String()
}
