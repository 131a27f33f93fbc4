// Package pdf is a minimal append-only PDF backend for the page canvas:
// a fluent builder over pages of text and rule lines, text measurement
// against the standard-14 font metrics, and a serializer producing the
// finished file. It deliberately supports only what document rendering
// needs; there is no reading, encryption, or image support.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Builder accumulates pages and writes the finished document.
type Builder interface {
	NewPage(width, height float64) Page
	MeasureText(text string, fontSize float64, font string) float64
	PageCount() int
	WriteTo(w io.Writer) (int64, error)
}

// Page draws onto a single page. Coordinates are PDF points with the
// origin at the bottom-left corner.
type Page interface {
	DrawText(text string, x, y float64, opts TextOptions) Page
	DrawLine(x1, y1, x2, y2 float64, opts LineOptions) Page
	Finish() Builder
}

// TextOptions configures text drawing.
type TextOptions struct {
	Font     string
	FontSize float64
}

// LineOptions configures line drawing.
type LineOptions struct {
	LineWidth float64
}

// NewBuilder constructs an empty document builder.
func NewBuilder() Builder {
	return &builderImpl{fonts: map[string]string{}}
}

type builderImpl struct {
	pages []*pageImpl
	fonts map[string]string // base font name -> resource name /F1, /F2...
}

type pageImpl struct {
	parent  *builderImpl
	width   float64
	height  float64
	content bytes.Buffer
}

func (b *builderImpl) NewPage(w, h float64) Page {
	p := &pageImpl{parent: b, width: w, height: h}
	b.pages = append(b.pages, p)
	return p
}

func (b *builderImpl) PageCount() int { return len(b.pages) }

func (b *builderImpl) MeasureText(text string, fontSize float64, font string) float64 {
	widths := metricsFor(font)
	total := 0
	for _, r := range text {
		total += widths.width(r)
	}
	return float64(total) * fontSize / 1000.0
}

func (b *builderImpl) fontResource(font string) string {
	base := BaseFontName(font)
	if res, ok := b.fonts[base]; ok {
		return res
	}
	res := fmt.Sprintf("F%d", len(b.fonts)+1)
	b.fonts[base] = res
	return res
}

func (p *pageImpl) DrawText(text string, x, y float64, opts TextOptions) Page {
	font := opts.Font
	if font == "" {
		font = "Helvetica"
	}
	size := opts.FontSize
	if size == 0 {
		size = 12
	}
	res := p.parent.fontResource(font)
	fmt.Fprintf(&p.content, "BT /%s %s Tf %s %s Td (%s) Tj ET\n",
		res, num(size), num(x), num(y), escapeText(text))
	return p
}

func (p *pageImpl) DrawLine(x1, y1, x2, y2 float64, opts LineOptions) Page {
	w := opts.LineWidth
	if w == 0 {
		w = 0.75
	}
	fmt.Fprintf(&p.content, "%s w %s %s m %s %s l S\n",
		num(w), num(x1), num(y1), num(x2), num(y2))
	return p
}

func (p *pageImpl) Finish() Builder { return p.parent }

// winAnsi maps the typographic runes drafted documents actually use to
// their WinAnsi code points.
var winAnsi = map[rune]byte{
	'•': 0x95, // bullet
	'–': 0x96, // en dash
	'—': 0x97, // em dash
	'‘': 0x91,
	'’': 0x92,
	'“': 0x93,
	'”': 0x94,
	'§': 0xA7, // section sign
}

// escapeText escapes the PDF string delimiters and encodes text as
// WinAnsi. Runes outside the encoding are replaced.
func escapeText(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '(', ')', '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		default:
			switch {
			case r <= 0xFF:
				sb.WriteByte(byte(r))
			default:
				if b, ok := winAnsi[r]; ok {
					sb.WriteByte(b)
				} else {
					sb.WriteByte('?')
				}
			}
		}
	}
	return sb.String()
}

func num(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
