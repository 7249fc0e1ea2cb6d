// Package search implements the line filter at the heart of minigrep.
//
// Both searches are pure: they read the query and document, never fail, and
// return lines in document order. Returned lines are substrings of the
// document, so they share its memory rather than copying it.
package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LineFilter reports whether a line belongs in the result.
type LineFilter func(line string) bool

// Search returns every line of document that contains query.
// An empty query matches every line.
func Search(query, document string) []string {
	return filterLines(document, func(line string) bool {
		return strings.Contains(line, query)
	})
}

// SearchCaseInsensitive is Search with both query and line lowercased
// before comparison. The returned lines keep their original casing.
func SearchCaseInsensitive(query, document string) []string {
	lower := newLowerer()
	query = lower.String(query)
	return filterLines(document, func(line string) bool {
		return strings.Contains(lower.String(line), query)
	})
}

// Run dispatches to Search or SearchCaseInsensitive according to mode.
func Run(mode Mode, query, document string) []string {
	if mode == CaseInsensitive {
		return SearchCaseInsensitive(query, document)
	}
	return Search(query, document)
}

// Lower returns the lowercase form used for case-insensitive comparison.
func Lower(s string) string {
	return newLowerer().String(s)
}

// newLowerer returns a locale-neutral Unicode lowercaser.
// A cases.Caser keeps state, so each search gets its own.
func newLowerer() cases.Caser {
	return cases.Lower(language.Und)
}

func filterLines(document string, keep LineFilter) []string {
	var matches []string
	for _, line := range Lines(document) {
		if keep(line) {
			matches = append(matches, line)
		}
	}
	return matches
}
