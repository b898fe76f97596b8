package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/ppiankov/i18nspectre/internal/analyzer"
)

// TextReporter renders findings as highlighted code frames
type TextReporter struct {
	writer io.Writer
}

// NewTextReporter creates a new text reporter
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{writer: w}
}

var (
	headerColor = color.New(color.FgCyan)
	dimColor    = color.New(color.Faint)
)

// Generate prints one code frame per finding, a blank separator line before
// every finding after the first, and the final tally.
func (r *TextReporter) Generate(data Data) error {
	for i, finding := range data.Findings {
		if i > 0 {
			fmt.Fprintln(r.writer)
		}
		r.printFinding(finding)
	}
	fmt.Fprintf(r.writer, "> Found %d strings\n", len(data.Findings))
	return nil
}

// printFinding renders a header line and every line the span covers, with
// the portion outside the span dimmed. Line number padding is at least four
// columns, widening for long files.
func (r *TextReporter) printFinding(finding analyzer.Finding) {
	loc := finding.Location
	fmt.Fprintf(r.writer, "%s\n", headerColor.Sprintf("%s:%d", finding.File, loc.StartLine))

	width := digitCount(loc.EndLine)
	if width < 4 {
		width = 4
	}
	for i, line := range loc.Lines {
		number := loc.StartLine + i
		runes := []rune(line)
		hiStart, hiEnd := 0, len(runes)
		if number == loc.StartLine {
			hiStart = loc.StartCol
		}
		if number == loc.EndLine {
			hiEnd = loc.EndCol
		}
		fmt.Fprintf(r.writer, " %*d │ %s\n", width, number, highlightLine(runes, hiStart, hiEnd))
	}
}

func highlightLine(runes []rune, hiStart, hiEnd int) string {
	if hiStart < 0 {
		hiStart = 0
	}
	if hiEnd > len(runes) {
		hiEnd = len(runes)
	}
	if hiEnd < hiStart {
		hiEnd = hiStart
	}

	var b strings.Builder
	if hiStart > 0 {
		b.WriteString(dimColor.Sprint(string(runes[:hiStart])))
	}
	b.WriteString(string(runes[hiStart:hiEnd]))
	if hiEnd < len(runes) {
		b.WriteString(dimColor.Sprint(string(runes[hiEnd:])))
	}
	return b.String()
}

func digitCount(n int) int {
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}
