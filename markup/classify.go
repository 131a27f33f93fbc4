// Package markup tokenizes marked-up legal document text into typed
// blocks. It classifies lines (headings, lists, block quotes, tables,
// horizontal rules), parses inline emphasis into styled runs, and offers
// Markdown and HTML import paths producing the same block stream.
//
// The parser never fails: unrecognized syntax degrades to plain text. At
// worst, markup characters leak into output.
package markup

import "strings"

// LineClass is the structural classification of a single source line.
type LineClass int

const (
	LinePlain LineClass = iota
	LineBlank
	LineHeading
	LineRule
	LineOrderedItem
	LineUnorderedItem
	LineBlockquote
	LineTableRow
	LineTableSep
)

// Line is one classified source line with markup stripped.
type Line struct {
	Class   LineClass
	Content string // plain content, markup removed
	Level   int    // heading depth 1-6
	Indent  int    // list nesting depth, 0 for top level
	Index   int    // ordered list number as written, 0 otherwise
	Cells   []string
}

// ClassifyLine determines the structural role of a single line of text.
func ClassifyLine(raw string) Line {
	if strings.TrimSpace(raw) == "" {
		return Line{Class: LineBlank}
	}

	trimmed := strings.TrimLeft(raw, " \t")
	indent := listIndent(raw)

	if level, rest, ok := headingPrefix(trimmed); ok {
		return Line{Class: LineHeading, Content: rest, Level: level}
	}
	if isHorizontalRule(trimmed) {
		return Line{Class: LineRule}
	}
	if rest, ok := strings.CutPrefix(trimmed, "> "); ok {
		return Line{Class: LineBlockquote, Content: rest}
	}
	if trimmed == ">" {
		return Line{Class: LineBlockquote}
	}
	if rest, ok := unorderedPrefix(trimmed); ok {
		return Line{Class: LineUnorderedItem, Content: rest, Indent: indent}
	}
	if n, rest, ok := orderedPrefix(trimmed); ok {
		return Line{Class: LineOrderedItem, Content: rest, Indent: indent, Index: n}
	}
	if cells, sep, ok := tableCells(trimmed); ok {
		if sep {
			return Line{Class: LineTableSep}
		}
		return Line{Class: LineTableRow, Cells: cells}
	}
	return Line{Class: LinePlain, Content: trimmed}
}

func headingPrefix(s string) (level int, rest string, ok bool) {
	for level < len(s) && s[level] == '#' {
		level++
	}
	if level < 1 || level > 6 {
		return 0, "", false
	}
	if level == len(s) {
		return level, "", true
	}
	if s[level] != ' ' {
		return 0, "", false
	}
	return level, strings.TrimSpace(s[level+1:]), true
}

// isHorizontalRule matches runs of three or more -, * or _ characters,
// optionally space separated.
func isHorizontalRule(s string) bool {
	var mark byte
	count := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' {
			continue
		}
		if c != '-' && c != '*' && c != '_' {
			return false
		}
		if mark == 0 {
			mark = c
		}
		if c != mark {
			return false
		}
		count++
	}
	return count >= 3
}

func unorderedPrefix(s string) (rest string, ok bool) {
	if len(s) < 2 {
		return "", false
	}
	if (s[0] == '-' || s[0] == '*' || s[0] == '+') && s[1] == ' ' {
		return strings.TrimSpace(s[2:]), true
	}
	return "", false
}

func orderedPrefix(s string) (n int, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == 0 || i >= len(s)-1 {
		return 0, "", false
	}
	if (s[i] == '.' || s[i] == ')') && s[i+1] == ' ' {
		return n, strings.TrimSpace(s[i+2:]), true
	}
	return 0, "", false
}

// listIndent counts leading indentation in steps of two spaces (a tab
// counts as one step).
func listIndent(raw string) int {
	spaces := 0
	steps := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case ' ':
			spaces++
			if spaces == 2 {
				steps++
				spaces = 0
			}
		case '\t':
			steps++
			spaces = 0
		default:
			return steps
		}
	}
	return steps
}

// tableCells splits a pipe-delimited row. A row of only dashes and colons
// is the header separator.
func tableCells(s string) (cells []string, sep bool, ok bool) {
	if !strings.HasPrefix(s, "|") {
		return nil, false, false
	}
	body := strings.TrimPrefix(s, "|")
	body = strings.TrimSuffix(body, "|")
	parts := strings.Split(body, "|")
	sep = true
	for _, p := range parts {
		cell := strings.TrimSpace(p)
		cells = append(cells, cell)
		if cell == "" || strings.Trim(cell, "-: ") != "" {
			sep = false
		}
	}
	if sep {
		return nil, true, true
	}
	return cells, false, true
}
