package layout

import (
	"github.com/signetdocs/signet/block"
	"github.com/signetdocs/signet/docfmt"
	"github.com/signetdocs/signet/markup"
)

// Layout constants in points.
const (
	listBulletGap   = 18.0
	listIndentStep  = 18.0
	quoteIndent     = 24.0
	ruleBlockHeight = 18.0
	tableCellPad    = 8.0
)

// Measure is Pass 1: compute each block's exact rendered height for the
// document type's usable page width, independent of where it lands. A
// caller-supplied positive Height is accepted as given; everything else
// is measured here. The input blocks are never mutated.
func (e *Engine) Measure(blocks []block.Block, docType string) []block.MeasuredBlock {
	rules := e.policy.RulesFor(docType)
	// Width does not vary by page number; only the top margin does.
	width := e.policy.UsableArea(docType, 2).Width

	measured := make([]block.MeasuredBlock, 0, len(blocks))
	for i := range blocks {
		b := &blocks[i]
		h := b.Height
		if h <= 0 {
			h = e.blockHeight(b, rules, width)
		}
		measured = append(measured, block.MeasuredBlock{
			Block:    b,
			Height:   h,
			CanSplit: b.Breakable && splittableKind(b.Kind),
		})
	}
	return measured
}

func splittableKind(k block.Kind) bool {
	return k == block.Text || k == block.ListItem || k == block.Blockquote
}

func (e *Engine) blockHeight(b *block.Block, rules docfmt.Rules, width float64) float64 {
	switch b.Kind {
	case block.Text:
		lines := e.wrapRuns(b.Runs, rules.FontFamily, rules.FontSize, false,
			width-rules.ParagraphIndent)
		return float64(len(lines))*rules.LineHeight() + rules.ParagraphSpacing

	case block.Heading:
		size, bold := markup.HeadingFont(b.Level)
		lines := e.wrapRuns(b.Runs, rules.FontFamily, size, bold, width)
		lineH := size * 1.2 * rules.Spacing.Factor()
		return float64(len(lines))*lineH + rules.ParagraphSpacing

	case block.ListItem:
		if b.Item == nil {
			return rules.LineHeight()
		}
		indent := listBulletGap + listIndentStep*float64(b.Item.Indent)
		lines := e.wrapRuns(b.Item.Runs, rules.FontFamily, rules.FontSize, false, width-indent)
		return float64(len(lines))*rules.LineHeight() + rules.ParagraphSpacing/2

	case block.Blockquote:
		lines := e.wrapRuns(b.Runs, rules.FontFamily, rules.FontSize, false, width-2*quoteIndent)
		return float64(len(lines))*rules.LineHeight() + rules.ParagraphSpacing

	case block.Rule:
		return ruleBlockHeight

	case block.Table:
		if b.Table == nil {
			return 0
		}
		rowH := rules.FontSize*1.2 + tableCellPad
		return float64(len(b.Table.Rows))*rowH + rules.ParagraphSpacing

	case block.Signature:
		return e.signatureHeight(b.Signature, rules, width)
	}
	return 0
}
