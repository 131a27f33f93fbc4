package markup

import (
	"regexp"
	"strings"

	"github.com/signetdocs/signet/block"
)

// Signature placement markers occupy a line of their own even when the
// surrounding lines are prose, so a marker next to a paragraph never
// dissolves into it.
var markerLine = regexp.MustCompile(`^\[(?:SIGNATURE|INITIALS|NOTARY)_BLOCK:[A-Za-z0-9_.-]+\]$`)

// Parse tokenizes a whole document into blocks. Paragraphs are runs of
// plain lines separated by blank lines; consecutive table rows collapse
// into one table block; block quote lines collapse into one quote block.
// Headings are marked keep-with-next so they are never stranded at the
// bottom of a page.
func Parse(text string) []block.Block {
	lines := strings.Split(text, "\n")
	var blocks []block.Block

	var para []string
	flushPara := func() {
		if len(para) == 0 {
			return
		}
		blocks = append(blocks, block.Block{
			Kind:      block.Text,
			Runs:      ParseInline(strings.Join(para, " ")),
			Breakable: true,
		})
		para = nil
	}

	var quote []string
	flushQuote := func() {
		if len(quote) == 0 {
			return
		}
		blocks = append(blocks, block.Block{
			Kind:      block.Blockquote,
			Runs:      ParseInline(strings.Join(quote, " ")),
			Breakable: true,
		})
		quote = nil
	}

	var table *block.TableData
	flushTable := func() {
		if table == nil {
			return
		}
		blocks = append(blocks, block.Block{Kind: block.Table, Table: table})
		table = nil
	}

	flushAll := func() { flushPara(); flushQuote(); flushTable() }

	for _, raw := range lines {
		line := ClassifyLine(raw)
		switch line.Class {
		case LineBlank:
			flushAll()
		case LinePlain:
			if markerLine.MatchString(line.Content) {
				flushAll()
				blocks = append(blocks, block.Block{
					Kind:      block.Text,
					Runs:      []block.Run{{Text: line.Content}},
					Breakable: true,
				})
				continue
			}
			flushQuote()
			flushTable()
			para = append(para, line.Content)
		case LineHeading:
			flushAll()
			blocks = append(blocks, block.Block{
				Kind:         block.Heading,
				Runs:         ParseInline(line.Content),
				Level:        line.Level,
				KeepWithNext: true,
			})
		case LineRule:
			flushAll()
			blocks = append(blocks, block.Block{Kind: block.Rule})
		case LineBlockquote:
			flushPara()
			flushTable()
			if line.Content != "" {
				quote = append(quote, line.Content)
			}
		case LineOrderedItem, LineUnorderedItem:
			flushAll()
			blocks = append(blocks, block.Block{
				Kind: block.ListItem,
				Item: &block.ListItemData{
					Runs:    ParseInline(line.Content),
					Ordered: line.Class == LineOrderedItem,
					Index:   line.Index,
					Indent:  line.Indent,
				},
				Breakable: true,
			})
		case LineTableRow:
			flushPara()
			flushQuote()
			if table == nil {
				table = &block.TableData{}
			}
			table.Rows = append(table.Rows, line.Cells)
		case LineTableSep:
			flushPara()
			flushQuote()
			if table != nil && table.HeaderRows == 0 {
				table.HeaderRows = len(table.Rows)
			}
		}
	}
	flushAll()
	return blocks
}
