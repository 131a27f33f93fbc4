package pdf

// Glyph advance widths for the standard-14 fonts, in 1/1000 em, covering
// the printable ASCII range 0x20-0x7E. Values are the published AFM
// widths.
type fontMetrics struct {
	widths  [95]int
	missing int // fallback for runes outside the table
}

func (m *fontMetrics) width(r rune) int {
	if r >= 0x20 && r <= 0x7E {
		return m.widths[r-0x20]
	}
	return m.missing
}

// BaseFontName normalizes a family/style font name to its standard-14
// base font. Unknown names pass through unchanged so callers can use any
// standard-14 name directly.
func BaseFontName(font string) string {
	switch font {
	case "", "Helvetica":
		return "Helvetica"
	case "Times", "Times-Roman":
		return "Times-Roman"
	case "Courier":
		return "Courier"
	}
	return font
}

// FontName builds the standard-14 name for a family plus style flags.
// Families: Helvetica, Times, Courier.
func FontName(family string, bold, italic bool) string {
	switch family {
	case "Times", "Times-Roman":
		switch {
		case bold && italic:
			return "Times-BoldItalic"
		case bold:
			return "Times-Bold"
		case italic:
			return "Times-Italic"
		}
		return "Times-Roman"
	case "Courier":
		switch {
		case bold && italic:
			return "Courier-BoldOblique"
		case bold:
			return "Courier-Bold"
		case italic:
			return "Courier-Oblique"
		}
		return "Courier"
	default:
		switch {
		case bold && italic:
			return "Helvetica-BoldOblique"
		case bold:
			return "Helvetica-Bold"
		case italic:
			return "Helvetica-Oblique"
		}
		return "Helvetica"
	}
}

// metricsFor resolves a font name to its width table. Oblique variants
// share their upright widths; Times-BoldItalic approximates with the
// bold table. Anything unrecognized measures as Helvetica.
func metricsFor(font string) *fontMetrics {
	switch BaseFontName(font) {
	case "Helvetica", "Helvetica-Oblique":
		return &helvetica
	case "Helvetica-Bold", "Helvetica-BoldOblique":
		return &helveticaBold
	case "Times-Roman":
		return &timesRoman
	case "Times-Bold", "Times-BoldItalic":
		return &timesBold
	case "Times-Italic":
		return &timesItalic
	case "Courier", "Courier-Bold", "Courier-Oblique", "Courier-BoldOblique":
		return &courier
	}
	return &helvetica
}

var helvetica = fontMetrics{missing: 556, widths: [95]int{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333, 278, 278,
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 278, 278, 584, 584, 584, 556,
	1015, 667, 667, 722, 722, 667, 611, 778, 722, 278, 500, 667, 556, 833, 722, 778,
	667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, 278, 278, 278, 469, 556,
	333, 556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833, 556, 556,
	556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500, 334, 260, 334, 584,
}}

var helveticaBold = fontMetrics{missing: 556, widths: [95]int{
	278, 333, 474, 556, 556, 889, 722, 238, 333, 333, 389, 584, 278, 333, 278, 278,
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 333, 333, 584, 584, 584, 611,
	975, 722, 722, 722, 722, 667, 611, 778, 722, 278, 556, 722, 611, 833, 722, 778,
	667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, 333, 278, 333, 584, 556,
	333, 556, 611, 556, 611, 556, 333, 611, 611, 278, 278, 556, 278, 889, 611, 611,
	611, 611, 389, 556, 333, 611, 556, 778, 556, 556, 500, 389, 280, 389, 584,
}}

var timesRoman = fontMetrics{missing: 500, widths: [95]int{
	250, 333, 408, 500, 500, 833, 778, 180, 333, 333, 500, 564, 250, 333, 250, 278,
	500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 278, 278, 564, 564, 564, 444,
	921, 722, 667, 667, 722, 611, 556, 722, 722, 333, 389, 722, 611, 889, 722, 722,
	556, 722, 667, 556, 611, 722, 722, 944, 722, 722, 611, 333, 278, 333, 469, 500,
	333, 444, 500, 444, 500, 444, 333, 500, 500, 278, 278, 500, 278, 778, 500, 500,
	500, 500, 333, 389, 278, 500, 500, 722, 500, 500, 444, 480, 200, 480, 541,
}}

var timesBold = fontMetrics{missing: 500, widths: [95]int{
	250, 333, 555, 500, 500, 1000, 833, 278, 333, 333, 500, 570, 250, 333, 250, 278,
	500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 333, 333, 570, 570, 570, 500,
	930, 722, 667, 722, 722, 667, 611, 778, 778, 389, 500, 778, 667, 944, 722, 778,
	611, 778, 722, 556, 667, 722, 722, 1000, 722, 722, 667, 333, 278, 333, 581, 500,
	333, 500, 556, 444, 556, 444, 333, 500, 556, 278, 333, 556, 278, 833, 556, 500,
	556, 556, 444, 389, 333, 556, 500, 722, 500, 500, 444, 394, 220, 394, 520,
}}

var timesItalic = fontMetrics{missing: 500, widths: [95]int{
	250, 333, 420, 500, 500, 833, 778, 214, 333, 333, 500, 675, 250, 333, 250, 278,
	500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 333, 333, 675, 675, 675, 500,
	920, 611, 611, 667, 722, 611, 611, 722, 722, 333, 444, 667, 556, 833, 667, 722,
	611, 722, 611, 500, 556, 722, 611, 833, 611, 556, 556, 389, 278, 389, 422, 500,
	333, 500, 500, 444, 500, 444, 278, 500, 500, 278, 278, 444, 278, 722, 500, 500,
	500, 500, 389, 389, 278, 500, 444, 667, 444, 444, 389, 400, 275, 400, 541,
}}

var courier = func() fontMetrics {
	m := fontMetrics{missing: 600}
	for i := range m.widths {
		m.widths[i] = 600
	}
	return m
}()
