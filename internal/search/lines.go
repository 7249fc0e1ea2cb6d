package search

import "strings"

// Lines splits document into lines.
//
// A line ends at "\n" or "\r\n"; the terminator is not part of the line.
// A trailing terminator does not produce a final empty line, and an empty
// document has no lines. Each returned line is a substring of document.
func Lines(document string) []string {
	if document == "" {
		return nil
	}

	lines := make([]string, 0, strings.Count(document, "\n")+1)
	rest := document
	for rest != "" {
		line, tail, found := strings.Cut(rest, "\n")
		if found {
			line = strings.TrimSuffix(line, "\r")
		}
		lines = append(lines, line)
		rest = tail
	}
	return lines
}
