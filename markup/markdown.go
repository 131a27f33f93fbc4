package markup

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/signetdocs/signet/block"
)

// FromMarkdown imports a Markdown document into a block stream using the
// goldmark AST. It is an alternative front door to Parse for callers that
// already hold CommonMark input; both produce the same block model.
func FromMarkdown(source []byte) ([]block.Block, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(gmtext.NewReader(source))

	w := &mdWalker{source: source}
	w.walk(doc, 0, false)
	return w.blocks, nil
}

type mdWalker struct {
	source []byte
	blocks []block.Block
}

func (w *mdWalker) walk(node ast.Node, listDepth int, ordered bool) {
	index := 0
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Heading:
			w.blocks = append(w.blocks, block.Block{
				Kind:         block.Heading,
				Runs:         w.inlineRuns(n),
				Level:        n.Level,
				KeepWithNext: true,
			})
		case *ast.Paragraph:
			w.blocks = append(w.blocks, block.Block{
				Kind:      block.Text,
				Runs:      w.inlineRuns(n),
				Breakable: true,
			})
		case *ast.Blockquote:
			w.blocks = append(w.blocks, block.Block{
				Kind:      block.Blockquote,
				Runs:      []block.Run{{Text: nodeText(n, w.source)}},
				Breakable: true,
			})
		case *ast.ThematicBreak:
			w.blocks = append(w.blocks, block.Block{Kind: block.Rule})
		case *ast.List:
			w.walk(n, listDepth+1, n.IsOrdered())
		case *ast.ListItem:
			index++
			w.blocks = append(w.blocks, block.Block{
				Kind: block.ListItem,
				Item: &block.ListItemData{
					Runs:    []block.Run{{Text: nodeText(n, w.source)}},
					Ordered: ordered,
					Index:   index,
					Indent:  listDepth - 1,
				},
				Breakable: true,
			})
		default:
			// Code blocks and other constructs degrade to plain text.
			if txt := nodeText(child, w.source); txt != "" {
				w.blocks = append(w.blocks, block.Block{
					Kind:      block.Text,
					Runs:      []block.Run{{Text: txt}},
					Breakable: true,
				})
			}
		}
	}
}

// inlineRuns flattens a block node's inline children into styled runs.
func (w *mdWalker) inlineRuns(node ast.Node) []block.Run {
	var runs []block.Run
	var visit func(n ast.Node, bold, italic bool, link string)
	visit = func(n ast.Node, bold, italic bool, link string) {
		switch t := n.(type) {
		case *ast.Text:
			runs = append(runs, block.Run{
				Text:   string(t.Segment.Value(w.source)),
				Bold:   bold,
				Italic: italic,
				Link:   link,
			})
			if t.SoftLineBreak() || t.HardLineBreak() {
				runs = append(runs, block.Run{Text: " ", Bold: bold, Italic: italic, Link: link})
			}
			return
		case *ast.Emphasis:
			if t.Level >= 2 {
				bold = true
			} else {
				italic = true
			}
		case *ast.Link:
			link = string(t.Destination)
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			visit(c, bold, italic, link)
		}
	}
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		visit(c, false, false, "")
	}
	return mergeRuns(runs)
}

func nodeText(n ast.Node, source []byte) string {
	var out []byte
	var visit func(ast.Node)
	visit = func(n ast.Node) {
		if t, ok := n.(*ast.Text); ok {
			out = append(out, t.Segment.Value(source)...)
			if t.SoftLineBreak() || t.HardLineBreak() {
				out = append(out, ' ')
			}
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			visit(c)
		}
	}
	visit(n)
	return string(out)
}
