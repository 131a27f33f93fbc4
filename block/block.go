// Package block defines the typed content model consumed by the layout
// engine: a closed set of block variants with placement constraints, plus
// the structured signature data attached to signature blocks.
package block

// Kind discriminates the block variants. Every consumer switches
// exhaustively over Kind; an unknown kind is a programming error.
type Kind int

const (
	Text Kind = iota
	Heading
	ListItem
	Table
	Blockquote
	Rule
	Signature
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Heading:
		return "heading"
	case ListItem:
		return "list-item"
	case Table:
		return "table"
	case Blockquote:
		return "blockquote"
	case Rule:
		return "horizontal-rule"
	case Signature:
		return "signature"
	}
	return "unknown"
}

// Run is a span of text carrying inline styling. A paragraph's content is
// a sequence of runs; concatenating Run.Text over the sequence yields the
// plain text with all markup removed.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Link   string
}

// PlainText joins the text of a run sequence.
func PlainText(runs []Run) string {
	var out []byte
	for _, r := range runs {
		out = append(out, r.Text...)
	}
	return string(out)
}

// ListItemData describes one list entry.
type ListItemData struct {
	Runs    []Run
	Ordered bool
	Index   int // 1-based position within an ordered list
	Indent  int // nesting depth, 0 for top level
}

// TableData is a parsed table: rows of cell text plus the number of
// leading header rows.
type TableData struct {
	Rows       [][]string
	HeaderRows int
}

// Block is one unit of document content. Blocks are constructed once from
// a fully drafted document and are immutable inputs to layout; the engine
// never mutates them.
type Block struct {
	Kind      Kind
	Runs      []Run          // Text, Blockquote
	Level     int            // Heading: 1-6
	Item      *ListItemData  // ListItem
	Table     *TableData     // Table
	Signature *SignatureData // Signature

	// Height is the caller-supplied estimated vertical extent in points.
	// The measurement pass replaces it with an exact value when a text
	// measurer is available.
	Height float64

	// Breakable blocks may be split mid-content across a page boundary.
	// Signature and table blocks are normally not breakable.
	Breakable bool

	// KeepWithNext forces this block onto the same page as the block
	// immediately following it.
	KeepWithNext bool
}

// PlainText returns the block's textual content stripped of markup.
func (b *Block) PlainText() string {
	switch b.Kind {
	case Text, Heading, Blockquote:
		return PlainText(b.Runs)
	case ListItem:
		if b.Item != nil {
			return PlainText(b.Item.Runs)
		}
	case Signature:
		if b.Signature != nil {
			return b.Signature.Marker.Raw
		}
	}
	return ""
}

// MeasuredBlock is the typed intermediate between the measurement pass and
// the placement pass: the source block, its exact rendered height for the
// target page width, and whether it may be split.
type MeasuredBlock struct {
	Block    *Block
	Height   float64
	CanSplit bool
}
