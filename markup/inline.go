package markup

import (
	"strings"

	"github.com/signetdocs/signet/block"
)

// ParseInline parses inline emphasis and link markup into styled runs.
//
// The strip is layered: links first, then the triple delimiter
// (bold+italic), then double (bold), then single (italic). Each layer
// operates only on the plain-text remainders left by the previous layer
// and never touches runs already tagged. Unpaired delimiters are left in
// place as plain text.
func ParseInline(s string) []block.Run {
	runs := []block.Run{{Text: s}}
	runs = stripLinks(runs)
	runs = stripDelim(runs, "***", true, true)
	runs = stripDelim(runs, "**", true, false)
	runs = stripDelim(runs, "*", false, true)
	return mergeRuns(runs)
}

func tagged(r block.Run) bool {
	return r.Bold || r.Italic || r.Link != ""
}

// stripDelim replaces delim-paired spans inside untagged runs with styled
// runs.
func stripDelim(runs []block.Run, delim string, bold, italic bool) []block.Run {
	var out []block.Run
	for _, r := range runs {
		if tagged(r) {
			out = append(out, r)
			continue
		}
		rest := r.Text
		for {
			open := strings.Index(rest, delim)
			if open < 0 {
				break
			}
			rel := strings.Index(rest[open+len(delim):], delim)
			if rel < 0 {
				break
			}
			inner := rest[open+len(delim) : open+len(delim)+rel]
			if inner == "" {
				// Adjacent delimiters carry no content; keep them
				// literally so no characters are lost.
				out = append(out, block.Run{Text: rest[:open+2*len(delim)]})
				rest = rest[open+2*len(delim):]
				continue
			}
			if before := rest[:open]; before != "" {
				out = append(out, block.Run{Text: before})
			}
			out = append(out, block.Run{Text: inner, Bold: bold, Italic: italic})
			rest = rest[open+rel+2*len(delim):]
		}
		if rest != "" {
			out = append(out, block.Run{Text: rest})
		}
	}
	return out
}

// stripLinks extracts [text](target) spans into link runs.
func stripLinks(runs []block.Run) []block.Run {
	var out []block.Run
	for _, r := range runs {
		if tagged(r) {
			out = append(out, r)
			continue
		}
		rest := r.Text
		for {
			open := strings.Index(rest, "[")
			if open < 0 {
				break
			}
			mid := strings.Index(rest[open:], "](")
			if mid < 0 {
				break
			}
			end := strings.Index(rest[open+mid+2:], ")")
			if end < 0 {
				break
			}
			label := rest[open+1 : open+mid]
			target := rest[open+mid+2 : open+mid+2+end]
			if before := rest[:open]; before != "" {
				out = append(out, block.Run{Text: before})
			}
			if label != "" {
				out = append(out, block.Run{Text: label, Link: target})
			}
			rest = rest[open+mid+2+end+1:]
		}
		if rest != "" {
			out = append(out, block.Run{Text: rest})
		}
	}
	return out
}

// mergeRuns coalesces adjacent runs with identical styling.
func mergeRuns(runs []block.Run) []block.Run {
	var out []block.Run
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.Bold == r.Bold && last.Italic == r.Italic && last.Link == r.Link {
				last.Text += r.Text
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// HeadingFont returns the point size and weight for a heading level.
// The table is fixed: level 1 renders at 16pt, level 2 at 14pt, level 3
// at 12pt bold, deeper levels at 12pt regular.
func HeadingFont(level int) (size float64, bold bool) {
	switch {
	case level <= 1:
		return 16, true
	case level == 2:
		return 14, true
	case level == 3:
		return 12, true
	default:
		return 12, false
	}
}
