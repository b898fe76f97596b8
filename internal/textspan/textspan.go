// Package textspan converts parser byte-offset spans into line and column
// positions in the source text.
//
// The external parser reports node extents as half-open [start, end) offsets
// into the UTF-8 encoding of the source. Columns in the resolved location are
// rune offsets within their line, so a highlight lands on the same visible
// characters even when the source contains multi-byte text before the span.
package textspan

import (
	"fmt"
)

// Location is a resolved span: 1-based line numbers, rune-based column
// offsets within the start and end lines, and the text of every line the
// span covers (terminators stripped).
type Location struct {
	StartLine int      `json:"start_line"`
	EndLine   int      `json:"end_line"`
	StartCol  int      `json:"start_col"`
	EndCol    int      `json:"end_col"`
	Lines     []string `json:"-"`
	Text      string   `json:"-"`
}

// Excerpt returns the covered lines joined by newlines. Skip-pattern vetoes
// match against this, not against the raw node value.
func (l Location) Excerpt() string {
	switch len(l.Lines) {
	case 0:
		return ""
	case 1:
		return l.Lines[0]
	}
	n := len(l.Lines) - 1
	for _, s := range l.Lines {
		n += len(s)
	}
	buf := make([]byte, 0, n)
	for i, s := range l.Lines {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, s...)
	}
	return string(buf)
}

// Resolve maps the byte span [start, end) onto src. It walks src rune by
// rune, tracking the running byte offset, and stops as soon as the end line
// is fully located. A span ending exactly at a line terminator closes on the
// line that terminator ends. start == end is a valid zero-width span.
//
// Malformed spans (end < start, or offsets past the encoded length) are an
// internal-consistency fault between parser and classifier and return an
// error rather than a clamped location.
func Resolve(src string, start, end int) (Location, error) {
	if start < 0 || end < start || end > len(src) {
		return Location{}, fmt.Errorf("invalid span [%d,%d) in %d-byte source", start, end, len(src))
	}

	var (
		line      = 1
		lineStart = 0 // byte offset of the current line's first rune
		col       = 0 // rune offset within the current line
		loc       = Location{Text: src[start:end]}
		startSeen bool
		endSeen   bool
	)

	for i, r := range src {
		if !startSeen && i >= start {
			startSeen = true
			loc.StartLine, loc.StartCol = line, col
		}
		if !endSeen && i >= end {
			endSeen = true
			loc.EndLine, loc.EndCol = line, col
		}
		if r == '\n' {
			if startSeen {
				loc.Lines = append(loc.Lines, src[lineStart:i])
			}
			if endSeen {
				return loc, nil
			}
			line++
			lineStart = i + 1
			col = 0
			continue
		}
		col++
	}

	// Span boundaries at or past the final rune: the offsets sit at the end
	// of the last line (possibly at EOF with no trailing terminator).
	if !startSeen {
		loc.StartLine, loc.StartCol = line, col
	}
	if !endSeen {
		loc.EndLine, loc.EndCol = line, col
	}
	if len(loc.Lines) < loc.EndLine-loc.StartLine+1 {
		loc.Lines = append(loc.Lines, src[lineStart:])
	}
	return loc, nil
}
