package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/signetdocs/signet/block"
)

// FromHTML imports an HTML fragment into a block stream. Only the
// structural subset used by drafted documents is recognized (headings,
// paragraphs, lists, block quotes, hr); everything else contributes its
// text content to the enclosing block.
func FromHTML(source string) ([]block.Block, error) {
	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return nil, err
	}
	w := &htmlWalker{}
	w.walk(doc, 0, false)
	return w.blocks, nil
}

type htmlWalker struct {
	blocks []block.Block
}

func (w *htmlWalker) walk(n *html.Node, listDepth int, ordered bool) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			level := int(n.Data[1] - '0')
			w.blocks = append(w.blocks, block.Block{
				Kind:         block.Heading,
				Runs:         htmlRuns(n),
				Level:        level,
				KeepWithNext: true,
			})
			return
		case atom.P:
			w.blocks = append(w.blocks, block.Block{
				Kind:      block.Text,
				Runs:      htmlRuns(n),
				Breakable: true,
			})
			return
		case atom.Blockquote:
			w.blocks = append(w.blocks, block.Block{
				Kind:      block.Blockquote,
				Runs:      []block.Run{{Text: htmlText(n)}},
				Breakable: true,
			})
			return
		case atom.Hr:
			w.blocks = append(w.blocks, block.Block{Kind: block.Rule})
			return
		case atom.Ul:
			w.walkList(n, listDepth+1, false)
			return
		case atom.Ol:
			w.walkList(n, listDepth+1, true)
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, listDepth, ordered)
	}
}

func (w *htmlWalker) walkList(n *html.Node, depth int, ordered bool) {
	index := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Li:
			index++
			w.blocks = append(w.blocks, block.Block{
				Kind: block.ListItem,
				Item: &block.ListItemData{
					Runs:    htmlRuns(c),
					Ordered: ordered,
					Index:   index,
					Indent:  depth - 1,
				},
				Breakable: true,
			})
		case atom.Ul:
			w.walkList(c, depth+1, false)
		case atom.Ol:
			w.walkList(c, depth+1, true)
		}
	}
}

// htmlRuns flattens inline children into styled runs, tracking b/strong,
// i/em and anchor nesting.
func htmlRuns(n *html.Node) []block.Run {
	var runs []block.Run
	var visit func(n *html.Node, bold, italic bool, link string)
	visit = func(n *html.Node, bold, italic bool, link string) {
		if n.Type == html.TextNode {
			txt := strings.Join(strings.Fields(n.Data), " ")
			if txt != "" {
				runs = append(runs, block.Run{Text: txt, Bold: bold, Italic: italic, Link: link})
			}
			return
		}
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.B, atom.Strong:
				bold = true
			case atom.I, atom.Em:
				italic = true
			case atom.A:
				for _, a := range n.Attr {
					if a.Key == "href" {
						link = a.Val
					}
				}
			case atom.Ul, atom.Ol:
				return // nested lists handled by the block walker
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c, bold, italic, link)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visit(c, false, false, "")
	}

	// Re-insert single spaces lost between text nodes.
	for i := 1; i < len(runs); i++ {
		prev := &runs[i-1]
		if !strings.HasSuffix(prev.Text, " ") && !strings.HasPrefix(runs[i].Text, " ") {
			prev.Text += " "
		}
	}
	return mergeRuns(runs)
}

func htmlText(n *html.Node) string {
	var sb strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
