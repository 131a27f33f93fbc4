package layout

import (
	"fmt"
	"strings"

	"github.com/signetdocs/signet/block"
	"github.com/signetdocs/signet/canvas"
	"github.com/signetdocs/signet/docfmt"
	"github.com/signetdocs/signet/markup"
	"github.com/signetdocs/signet/pdf"
)

// Render draws a placement plan through the canvas. The plan is trusted:
// page breaks happen exactly where Place decided, and the canvas is
// advanced only through its defined operations.
func (e *Engine) Render(res *Result, c canvas.Canvas, docType string) error {
	if res == nil {
		return fmt.Errorf("layout: nil result")
	}
	rules := e.policy.RulesFor(docType)
	width := e.policy.UsableArea(docType, 2).Width

	for idx := range res.Pages {
		page := &res.Pages[idx]
		if idx > 0 {
			c.NewPage()
		}
		if rules.NumberPosition != docfmt.NumberNone {
			c.StampPageNumber(rules.NumberFormat.Format(page.Number))
		}
		left, y := c.Cursor()
		for i := range page.Blocks {
			y = e.renderBlock(c, page.Blocks[i].Block, rules, left, width, y)
		}
	}
	return nil
}

func (e *Engine) renderBlock(c canvas.Canvas, b *block.Block, rules docfmt.Rules, left, width, y float64) float64 {
	switch b.Kind {
	case block.Text:
		lines := e.wrapRuns(b.Runs, rules.FontFamily, rules.FontSize, false,
			width-rules.ParagraphIndent)
		for i, ln := range lines {
			x := left
			if i == 0 {
				x += rules.ParagraphIndent
			}
			y = e.writeLine(c, ln, x, y, rules.LineHeight())
		}
		return y - rules.ParagraphSpacing

	case block.Heading:
		size, bold := markup.HeadingFont(b.Level)
		lineH := size * 1.2 * rules.Spacing.Factor()
		lines := e.wrapRuns(b.Runs, rules.FontFamily, size, bold, width)
		for _, ln := range lines {
			y = e.writeLine(c, ln, left, y, lineH)
		}
		return y - rules.ParagraphSpacing

	case block.ListItem:
		if b.Item == nil {
			return y
		}
		indent := listIndentStep * float64(b.Item.Indent)
		marker := "•"
		if b.Item.Ordered {
			marker = fmt.Sprintf("%d.", b.Item.Index)
		}
		font := pdf.FontName(rules.FontFamily, false, false)
		c.MoveTo(left+indent, y)
		c.WriteText(marker, canvas.TextOptions{Font: font, Size: rules.FontSize})
		lines := e.wrapRuns(b.Item.Runs, rules.FontFamily, rules.FontSize, false,
			width-indent-listBulletGap)
		for _, ln := range lines {
			y = e.writeLine(c, ln, left+indent+listBulletGap, y, rules.LineHeight())
		}
		return y - rules.ParagraphSpacing/2

	case block.Blockquote:
		lines := e.wrapRuns(b.Runs, rules.FontFamily, rules.FontSize, false,
			width-2*quoteIndent)
		for _, ln := range lines {
			y = e.writeLine(c, ln, left+quoteIndent, y, rules.LineHeight())
		}
		return y - rules.ParagraphSpacing

	case block.Rule:
		mid := y - ruleBlockHeight/2
		c.DrawLine(left, mid, left+width, mid)
		return y - ruleBlockHeight

	case block.Table:
		return e.renderTable(c, b.Table, rules, left, width, y)

	case block.Signature:
		return e.renderSignature(c, b.Signature, rules, left, width, y)
	}
	return y
}

// writeLine draws one wrapped line piece by piece and returns the cursor
// position for the next line.
func (e *Engine) writeLine(c canvas.Canvas, ln line, x, y, lineH float64) float64 {
	for _, p := range ln {
		c.MoveTo(x, y)
		c.WriteText(p.text, canvas.TextOptions{Font: p.font, Size: p.size})
		x += p.width
	}
	return y - lineH
}

func (e *Engine) renderTable(c canvas.Canvas, t *block.TableData, rules docfmt.Rules, left, width, y float64) float64 {
	if t == nil || len(t.Rows) == 0 {
		return y
	}
	cols := 0
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	rowH := rules.FontSize*1.2 + tableCellPad
	colW := width / float64(cols)
	top := y

	for r, row := range t.Rows {
		font := pdf.FontName(rules.FontFamily, r < t.HeaderRows, false)
		rowTop := y
		for ci, cell := range row {
			text := strings.TrimSpace(cell)
			c.MoveTo(left+float64(ci)*colW+tableCellPad/2, rowTop-tableCellPad/2)
			c.WriteText(text, canvas.TextOptions{Font: font, Size: rules.FontSize})
		}
		y -= rowH
		c.DrawLine(left, y, left+width, y)
	}
	c.DrawLine(left, top, left+width, top)
	for ci := 0; ci <= cols; ci++ {
		x := left + float64(ci)*colW
		c.DrawLine(x, top, x, y)
	}
	return y - rules.ParagraphSpacing
}
