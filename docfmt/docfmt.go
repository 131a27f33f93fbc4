// Package docfmt supplies per-document-type formatting policy: margins,
// line spacing, fonts, page numbering, and the usable page area for a
// given page number. Policy is an immutable injected table, not computed
// state; unknown document types fall back to a conservative default.
package docfmt

// Letter page dimensions in points.
const (
	PageWidth  = 612.0
	PageHeight = 792.0
)

// Spacing is the line-spacing class of a document body. Signature
// sections always render single spaced regardless of the body class.
type Spacing int

const (
	SpacingSingle Spacing = iota
	SpacingOneHalf
	SpacingDouble
)

// Factor returns the multiplier applied to the base line height.
func (s Spacing) Factor() float64 {
	switch s {
	case SpacingOneHalf:
		return 1.5
	case SpacingDouble:
		return 2.0
	}
	return 1.0
}

// NumberStyle selects the page-number counter.
type NumberStyle int

const (
	StyleNumeric NumberStyle = iota // 1, 2, 3...
	StyleRoman                      // i, ii, iii...
	StyleAlpha                      // a, b... z, aa, ab...
)

// PageNumberFormat renders page numbers with optional prefix/suffix
// strings around the styled counter.
type PageNumberFormat struct {
	Style  NumberStyle `yaml:"style"`
	Prefix string      `yaml:"prefix"`
	Suffix string      `yaml:"suffix"`
}

// NumberPosition places the stamped page number.
type NumberPosition int

const (
	NumberBottomCenter NumberPosition = iota
	NumberBottomRight
	NumberTopRight
	NumberNone
)

// Margins are page margins in points.
type Margins struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// Rules is the formatting policy for one document type.
type Rules struct {
	Spacing          Spacing          `yaml:"spacing"`
	FontFamily       string           `yaml:"font"`
	FontSize         float64          `yaml:"font_size"`
	Margins          Margins          `yaml:"margins"`
	FirstPageTop     float64          `yaml:"first_page_top"` // 0 means same as Margins.Top
	NumberFormat     PageNumberFormat `yaml:"page_number"`
	NumberPosition   NumberPosition   `yaml:"number_position"`
	ParagraphIndent  float64          `yaml:"paragraph_indent"`
	ParagraphSpacing float64          `yaml:"paragraph_spacing"`
	SideBySideSigs   bool             `yaml:"side_by_side_signatures"`
}

// LineHeight is the body line height in points.
func (r Rules) LineHeight() float64 {
	return r.FontSize * 1.2 * r.Spacing.Factor()
}

// SignatureLineHeight is always single spaced.
func (r Rules) SignatureLineHeight() float64 {
	return r.FontSize * 1.2
}

// Area is a usable page extent in points.
type Area struct {
	Width  float64
	Height float64
}

// Policy maps document-type identifiers to their formatting rules.
type Policy map[string]Rules

// DefaultRules is the conservative fallback applied when a document type
// is not in the policy table: single spacing, one-inch margins.
func DefaultRules() Rules {
	return Rules{
		Spacing:          SpacingSingle,
		FontFamily:       "Times",
		FontSize:         12,
		Margins:          Margins{Top: 72, Bottom: 72, Left: 72, Right: 72},
		NumberFormat:     PageNumberFormat{Style: StyleNumeric},
		NumberPosition:   NumberBottomCenter,
		ParagraphSpacing: 12,
	}
}

// Default is the built-in policy table. Government filings double space
// the body and reserve a 1.5 inch top margin on page one for the caption
// header; bilateral agreements use 1.5 spacing with the side-by-side
// signature convention; correspondence is single spaced with one signer.
func Default() Policy {
	filing := DefaultRules()
	filing.Spacing = SpacingDouble
	filing.FirstPageTop = 108
	filing.ParagraphIndent = 36
	filing.NumberPosition = NumberBottomCenter

	agreement := DefaultRules()
	agreement.Spacing = SpacingOneHalf
	agreement.SideBySideSigs = true
	agreement.NumberFormat = PageNumberFormat{Style: StyleNumeric, Prefix: "- ", Suffix: " -"}

	letter := DefaultRules()
	letter.NumberPosition = NumberNone

	return Policy{
		"filing":    filing,
		"agreement": agreement,
		"letter":    letter,
	}
}

// RulesFor resolves a document type, falling back to DefaultRules for
// unknown types rather than failing.
func (p Policy) RulesFor(docType string) Rules {
	if r, ok := p[docType]; ok {
		return r
	}
	return DefaultRules()
}

// UsableArea returns the content extent for a page of the given 1-based
// number. Document types with a FirstPageTop reservation shrink page one
// only.
func (p Policy) UsableArea(docType string, pageNumber int) Area {
	r := p.RulesFor(docType)
	top := r.Margins.Top
	if pageNumber == 1 && r.FirstPageTop > top {
		top = r.FirstPageTop
	}
	return Area{
		Width:  PageWidth - r.Margins.Left - r.Margins.Right,
		Height: PageHeight - top - r.Margins.Bottom,
	}
}
