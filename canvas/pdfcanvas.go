package canvas

import (
	"github.com/signetdocs/signet/docfmt"
	"github.com/signetdocs/signet/pdf"
)

// PDFCanvas implements Canvas over the pdf builder, applying the margins
// and page-number placement of one document type.
type PDFCanvas struct {
	b       pdf.Builder
	policy  docfmt.Policy
	docType string
	rules   docfmt.Rules

	page      pdf.Page
	pageIndex int
	x, y      float64
}

// NewPDF creates a canvas that draws through b using the formatting
// policy of docType. The first page is opened immediately.
func NewPDF(b pdf.Builder, policy docfmt.Policy, docType string) *PDFCanvas {
	c := &PDFCanvas{b: b, policy: policy, docType: docType, rules: policy.RulesFor(docType)}
	c.NewPage()
	return c
}

func (c *PDFCanvas) topMargin(pageNumber int) float64 {
	top := c.rules.Margins.Top
	if pageNumber == 1 && c.rules.FirstPageTop > top {
		top = c.rules.FirstPageTop
	}
	return top
}

func (c *PDFCanvas) PageIndex() int             { return c.pageIndex }
func (c *PDFCanvas) Cursor() (float64, float64) { return c.x, c.y }
func (c *PDFCanvas) MoveTo(x, y float64)        { c.x, c.y = x, y }

func (c *PDFCanvas) NewPage() {
	c.pageIndex++
	c.page = c.b.NewPage(docfmt.PageWidth, docfmt.PageHeight)
	c.x = c.rules.Margins.Left
	c.y = docfmt.PageHeight - c.topMargin(c.pageIndex)
}

func (c *PDFCanvas) WriteText(text string, opts TextOptions) float64 {
	size := opts.Size
	if size == 0 {
		size = c.rules.FontSize
	}
	c.page.DrawText(text, c.x, c.y-size, pdf.TextOptions{Font: opts.Font, FontSize: size})
	c.y -= opts.Advance
	return c.y
}

func (c *PDFCanvas) DrawLine(x1, y1, x2, y2 float64) {
	c.page.DrawLine(x1, y1, x2, y2, pdf.LineOptions{})
}

func (c *PDFCanvas) RemainingSpace() float64 {
	return c.y - c.rules.Margins.Bottom
}

func (c *PDFCanvas) StampPageNumber(label string) {
	if c.rules.NumberPosition == docfmt.NumberNone || label == "" {
		return
	}
	font := pdf.FontName(c.rules.FontFamily, false, false)
	size := c.rules.FontSize
	w := c.b.MeasureText(label, size, font)

	var x, y float64
	switch c.rules.NumberPosition {
	case docfmt.NumberBottomRight:
		x = docfmt.PageWidth - c.rules.Margins.Right - w
		y = c.rules.Margins.Bottom / 2
	case docfmt.NumberTopRight:
		x = docfmt.PageWidth - c.rules.Margins.Right - w
		y = docfmt.PageHeight - c.rules.Margins.Top/2
	default: // bottom center
		x = (docfmt.PageWidth - w) / 2
		y = c.rules.Margins.Bottom / 2
	}
	c.page.DrawText(label, x, y, pdf.TextOptions{Font: font, FontSize: size})
}

// MeasureText satisfies Measurer by delegating to the builder's font
// metrics.
func (c *PDFCanvas) MeasureText(text string, fontSize float64, font string) float64 {
	return c.b.MeasureText(text, fontSize, font)
}
