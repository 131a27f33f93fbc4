package layout

import "github.com/signetdocs/signet/block"

// Page is one laid-out page: the blocks placed on it in document order
// and the vertical space left unused. Numbers are 1-based, strictly
// sequential, with no gaps.
type Page struct {
	Number          int
	Blocks          []block.MeasuredBlock
	RemainingHeight float64
}

// Result is the placement plan for one document. It is disposable: the
// engine produces a fresh Result per invocation and keeps no state
// between documents.
type Result struct {
	Pages      []Page
	TotalPages int
	// HasOverflow is set when a single unit could not fit even on an
	// empty page and was placed anyway.
	HasOverflow bool
}
