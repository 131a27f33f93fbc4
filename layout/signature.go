package layout

import (
	"strings"

	"github.com/signetdocs/signet/block"
	"github.com/signetdocs/signet/canvas"
	"github.com/signetdocs/signet/docfmt"
	"github.com/signetdocs/signet/pdf"
	"github.com/signetdocs/signet/sigparse"
)

// Signature geometry in points and lines. Signature sections are always
// single spaced regardless of the body spacing class.
const (
	sigInkGapLines    = 2    // blank lines reserved for the wet signature
	sigRuleInset      = 18.0 // rule stops short of the column edge
	initialsRuleWidth = 90.0
	stackGapLines     = 1 // gap between stacked single-column parties
)

type sigField struct {
	label string
	value string
}

// partyFields lists the printed lines under a party's rule.
func partyFields(p block.Party) []sigField {
	if p.LineType == block.InitialsLine {
		return nil
	}
	var fields []sigField
	if p.Name != "" {
		fields = append(fields, sigField{"Name", p.Name})
	}
	if p.Title != "" {
		fields = append(fields, sigField{"Title", p.Title})
	}
	if p.Company != "" {
		fields = append(fields, sigField{"Company", p.Company})
	}
	fields = append(fields, sigField{"Date", p.Date})
	return fields
}

// partyRows counts the lines a party column occupies.
func partyRows(p block.Party) int {
	if p.LineType == block.InitialsLine {
		return 3 // role, one-line gap, rule
	}
	return 1 + sigInkGapLines + 1 + len(partyFields(p))
}

// signatureHeight measures a signature block: side-by-side columns take
// the tallest column; stacked parties accumulate. A required notary
// acknowledgment is appended after the party columns and never split
// from them.
func (e *Engine) signatureHeight(data *block.SignatureData, rules docfmt.Rules, width float64) float64 {
	if data == nil || len(data.Parties) == 0 {
		return 0
	}
	lh := rules.SignatureLineHeight()
	col := sigparse.AnalyzeLayout(data, width)

	rows := 0
	if col.Columns > 1 {
		for _, p := range data.Parties {
			if n := partyRows(p); n > rows {
				rows = n
			}
		}
	} else {
		for i, p := range data.Parties {
			rows += partyRows(p)
			if i > 0 {
				rows += stackGapLines
			}
		}
	}
	h := float64(rows) * lh
	if data.NotaryRequired {
		h += float64(1+e.notaryRows(data, rules, width)) * lh
	}
	return h + rules.ParagraphSpacing
}

// renderSignature draws the party columns and, when required, the notary
// acknowledgment. Returns the cursor position below the block.
func (e *Engine) renderSignature(c canvas.Canvas, data *block.SignatureData, rules docfmt.Rules, left, width, y float64) float64 {
	if data == nil || len(data.Parties) == 0 {
		return y
	}
	lh := rules.SignatureLineHeight()
	col := sigparse.AnalyzeLayout(data, width)

	if col.Columns > 1 {
		maxRows := 0
		for k, p := range data.Parties {
			x := left + float64(k)*(col.ColumnWidth+col.Spacing)
			rows := e.renderPartyColumn(c, p, rules, x, col.ColumnWidth, y)
			if rows > maxRows {
				maxRows = rows
			}
		}
		y -= float64(maxRows) * lh
	} else {
		for i, p := range data.Parties {
			if i > 0 {
				y -= float64(stackGapLines) * lh
			}
			rows := e.renderPartyColumn(c, p, rules, left, col.ColumnWidth, y)
			y -= float64(rows) * lh
		}
	}

	if data.NotaryRequired {
		y -= lh
		y = e.renderNotary(c, data, rules, left, width, y)
	}
	return y - rules.ParagraphSpacing
}

// renderPartyColumn draws one party at x and reports the rows consumed.
func (e *Engine) renderPartyColumn(c canvas.Canvas, p block.Party, rules docfmt.Rules, x, colW, y float64) int {
	lh := rules.SignatureLineHeight()
	size := rules.FontSize
	bold := pdf.FontName(rules.FontFamily, true, false)
	regular := pdf.FontName(rules.FontFamily, false, false)

	c.MoveTo(x, y)
	c.WriteText(strings.ToUpper(p.Role)+":", canvas.TextOptions{Font: bold, Size: size})
	y -= lh

	if p.LineType == block.InitialsLine {
		y -= lh // short ink gap
		c.DrawLine(x, y-lh*0.75, x+initialsRuleWidth, y-lh*0.75)
		return 3
	}

	y -= float64(sigInkGapLines) * lh
	ruleW := colW - sigRuleInset
	c.DrawLine(x, y-lh*0.75, x+ruleW, y-lh*0.75)
	y -= lh

	fields := partyFields(p)
	for _, f := range fields {
		value := f.value
		if value == "" {
			value = "____________________"
		}
		c.MoveTo(x, y)
		c.WriteText(f.label+": "+value, canvas.TextOptions{Font: regular, Size: size})
		y -= lh
	}
	return 1 + sigInkGapLines + 1 + len(fields)
}

// notaryParty returns the notary sub-fields attached to any party, or
// zeroes when the acknowledgment renders with blanks.
func notaryParty(data *block.SignatureData) block.NotaryInfo {
	for _, p := range data.Parties {
		if p.Notary != nil {
			return *p.Notary
		}
	}
	return block.NotaryInfo{}
}

func blankOr(v string) string {
	if v == "" {
		return "______________"
	}
	return v
}

// notaryTextRows builds the acknowledgment text lines above the notary
// rule. Shared by measurement and rendering so both agree on height.
func (e *Engine) notaryTextRows(data *block.SignatureData, rules docfmt.Rules, width float64) [][]line {
	info := notaryParty(data)
	ack := "Subscribed and sworn to before me on this ____ day of ____________, 20__."
	paras := []string{
		"STATE OF " + strings.ToUpper(blankOr(info.State)),
		"COUNTY OF " + strings.ToUpper(blankOr(info.County)),
		"",
		ack,
	}
	rows := make([][]line, 0, len(paras))
	for _, p := range paras {
		if p == "" {
			rows = append(rows, nil)
			continue
		}
		rows = append(rows, e.wrapRuns([]block.Run{{Text: p}}, rules.FontFamily, rules.FontSize, false, width))
	}
	return rows
}

// notaryRows counts the acknowledgment's total lines: text, a blank, the
// notary rule, and the commission lines.
func (e *Engine) notaryRows(data *block.SignatureData, rules docfmt.Rules, width float64) int {
	n := 0
	for _, para := range e.notaryTextRows(data, rules, width) {
		if para == nil {
			n++
			continue
		}
		n += len(para)
	}
	// blank, rule, "Notary Public", expiry, commission number
	return n + 5
}

func (e *Engine) renderNotary(c canvas.Canvas, data *block.SignatureData, rules docfmt.Rules, left, width, y float64) float64 {
	lh := rules.SignatureLineHeight()
	size := rules.FontSize
	regular := pdf.FontName(rules.FontFamily, false, false)
	info := notaryParty(data)

	for _, para := range e.notaryTextRows(data, rules, width) {
		if para == nil {
			y -= lh
			continue
		}
		for _, ln := range para {
			y = e.writeLine(c, ln, left, y, lh)
		}
	}

	y -= lh // ink gap above the notary's own rule
	ruleW := width/2 - sigRuleInset
	c.DrawLine(left, y-lh*0.75, left+ruleW, y-lh*0.75)
	y -= lh

	trailing := []string{
		"Notary Public",
		"My commission expires: " + blankOr(info.CommissionExpires),
		"Commission No.: " + blankOr(info.CommissionNumber),
	}
	for _, t := range trailing {
		c.MoveTo(left, y)
		c.WriteText(t, canvas.TextOptions{Font: regular, Size: size})
		y -= lh
	}
	return y
}
