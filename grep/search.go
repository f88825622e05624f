package grep

import (
	"iter"
	"strings"
)

// Lines returns an iterator over the lines of content.
//
// A line ends at "\n" or "\r\n", and the terminator is not included. A final
// terminator does not produce a trailing empty line. A lone "\r" is kept as
// part of the line.
//
// Each yielded line is a substring of content; nothing is copied.
func Lines(content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(content) {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}

			if !yield(line) {
				return
			}
		}
	}
}

// Search returns every line of content containing query, in order.
// Matching is exact and case-sensitive.
func Search(query, content string) []string {
	var result []string

	for line := range Lines(content) {
		if strings.Contains(line, query) {
			result = append(result, line)
		}
	}

	return result
}

// SearchCaseInsensitive returns every line of content containing query when
// both are lowercased, in order. The original line text is returned.
func SearchCaseInsensitive(query, content string) []string {
	var result []string

	query = strings.ToLower(query)

	for line := range Lines(content) {
		if strings.Contains(strings.ToLower(line), query) {
			result = append(result, line)
		}
	}

	return result
}

// Func is the signature shared by [Search] and [SearchCaseInsensitive].
type Func func(query, content string) []string

// Matcher returns the search function selected by cfg.
func Matcher(cfg Config) Func {
	if cfg.IgnoreCase {
		return SearchCaseInsensitive
	}

	return Search
}
