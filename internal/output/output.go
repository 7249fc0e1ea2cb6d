// Package output writes search results to the console.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/Aman-CERP/minigrep/internal/search"
)

// Line layout written around the results.
const (
	QueryLabel    = "Searching for the query: "
	FileLabel     = "In the file: "
	ContentsLabel = "The file contains: "
	ResultsHeader = "Results:"
)

// Colors used when styling is enabled.
const (
	ColorHeader = "154"
	ColorMatch  = "220"
)

// Writer provides formatted output for the CLI.
// Errors from writing are intentionally ignored for console output.
type Writer struct {
	out      io.Writer
	useColor bool
	header   lipgloss.Style
	match    lipgloss.Style

	query string
	mode  search.Mode
}

// New creates a Writer that writes plain text.
func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WithColor enables ANSI styling of the header and matched text.
func (w *Writer) WithColor(enabled bool) *Writer {
	w.useColor = enabled
	if enabled {
		r := lipgloss.NewRenderer(w.out)
		r.SetColorProfile(termenv.ANSI256)
		w.header = r.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader))
		w.match = r.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorMatch))
	}
	return w
}

// WithHighlight sets the query whose occurrences are styled in matches.
func (w *Writer) WithHighlight(query string, mode search.Mode) *Writer {
	w.query = query
	w.mode = mode
	return w
}

// Banner prints the query and file being searched.
func (w *Writer) Banner(query, filename string) {
	_, _ = fmt.Fprintf(w.out, "%s%s\n", QueryLabel, query)
	_, _ = fmt.Fprintf(w.out, "%s%s\n", FileLabel, filename)
}

// Contents prints the full document after a label line.
func (w *Writer) Contents(document string) {
	_, _ = fmt.Fprintf(w.out, "%s\n%s\n", ContentsLabel, document)
}

// Header prints the results header.
func (w *Writer) Header() {
	header := ResultsHeader
	if w.useColor {
		header = w.header.Render(header)
	}
	_, _ = fmt.Fprintln(w.out, header)
}

// Matches prints each line on its own line, in order.
func (w *Writer) Matches(lines []string) {
	for _, line := range lines {
		_, _ = fmt.Fprintln(w.out, w.render(line))
	}
}

// Count prints the number of matching lines.
func (w *Writer) Count(n int) {
	_, _ = fmt.Fprintln(w.out, n)
}

// render styles every occurrence of the query in line.
func (w *Writer) render(line string) string {
	if !w.useColor || w.query == "" {
		return line
	}

	spans := Spans(line, w.query, w.mode)
	if len(spans) == 0 {
		return line
	}

	var sb strings.Builder
	last := 0
	for _, s := range spans {
		sb.WriteString(line[last:s[0]])
		sb.WriteString(w.match.Render(line[s[0]:s[1]]))
		last = s[1]
	}
	sb.WriteString(line[last:])
	return sb.String()
}

// Spans returns the byte ranges of non-overlapping query occurrences in line.
// In case-insensitive mode, ranges are only reported when lowercasing keeps
// the byte width of every rune of line; otherwise nil is returned.
func Spans(line, query string, mode search.Mode) [][2]int {
	if query == "" {
		return nil
	}

	haystack, needle := line, query
	if mode == search.CaseInsensitive {
		if !lowerKeepsWidths(line) {
			return nil
		}
		haystack, needle = search.Lower(line), search.Lower(query)
		if len(haystack) != len(line) {
			return nil
		}
	}

	var spans [][2]int
	for off := 0; off <= len(haystack)-len(needle); {
		i := strings.Index(haystack[off:], needle)
		if i < 0 {
			break
		}
		start, end := off+i, off+i+len(needle)
		if !boundary(line, start) || !boundary(line, end) {
			return nil
		}
		spans = append(spans, [2]int{start, end})
		off = end
	}
	return spans
}

// lowerKeepsWidths reports whether each rune of s lowercases to the same
// number of bytes, so offsets into the lowercased text are offsets into s.
// "İ" grows from 2 to 3 bytes and the Kelvin sign shrinks from 3 to 1.
func lowerKeepsWidths(s string) bool {
	for _, r := range s {
		if r < utf8.RuneSelf {
			continue
		}
		if len(search.Lower(string(r))) != utf8.RuneLen(r) {
			return false
		}
	}
	return true
}

func boundary(s string, i int) bool {
	return i == len(s) || utf8.RuneStart(s[i])
}

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}

	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// UseColor resolves a color setting (auto, always, never) for w.
func UseColor(setting string, w io.Writer) bool {
	switch setting {
	case "always":
		return true
	case "never":
		return false
	default:
		return IsTTY(w)
	}
}
