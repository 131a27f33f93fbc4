package layout

import (
	"strings"

	"github.com/signetdocs/signet/block"
	"github.com/signetdocs/signet/pdf"
)

// piece is a same-font fragment of a wrapped line.
type piece struct {
	text  string
	font  string
	size  float64
	width float64
}

// line is one rendered line of text composed of styled pieces.
type line []piece

func (l line) width() float64 {
	total := 0.0
	for _, p := range l {
		total += p.width
	}
	return total
}

// measure returns the width of text, falling back to a half-em estimate
// when no measurer is configured.
func (e *Engine) measure(text string, size float64, font string) float64 {
	if e.measurer != nil {
		return e.measurer.MeasureText(text, size, font)
	}
	return float64(len(text)) * size * 0.5
}

// wrapRuns word-wraps styled runs into lines no wider than maxWidth.
// A word longer than the whole line is placed alone and allowed to
// overhang rather than being broken mid-word.
func (e *Engine) wrapRuns(runs []block.Run, family string, size float64, forceBold bool, maxWidth float64) []line {
	var lines []line
	var cur line
	curWidth := 0.0

	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, cur)
			cur = nil
			curWidth = 0
		}
	}

	for _, run := range runs {
		font := pdf.FontName(family, run.Bold || forceBold, run.Italic)
		spaceW := e.measure(" ", size, font)
		for _, word := range strings.Fields(run.Text) {
			w := e.measure(word, size, font)
			switch {
			case len(cur) == 0:
				cur = line{{text: word, font: font, size: size, width: w}}
				curWidth = w
			case curWidth+spaceW+w <= maxWidth:
				last := &cur[len(cur)-1]
				if last.font == font {
					last.text += " " + word
					last.width += spaceW + w
				} else {
					cur = append(cur, piece{text: " " + word, font: font, size: size, width: spaceW + w})
				}
				curWidth += spaceW + w
			default:
				flush()
				cur = line{{text: word, font: font, size: size, width: w}}
				curWidth = w
			}
		}
	}
	flush()
	return lines
}
