// Package layout is the pagination core: a two-pass engine that measures
// typed blocks against a document type's formatting policy, computes a
// page-by-page placement plan, and drives a page canvas to render it.
//
// The engine is synchronous and owns no shared state; independent
// instances lay out documents in parallel without locking. Recoverable
// conditions (oversized blocks, empty input, unknown document types)
// never raise; they surface as flags on the Result.
package layout

import (
	"github.com/signetdocs/signet/block"
	"github.com/signetdocs/signet/canvas"
	"github.com/signetdocs/signet/docfmt"
	"github.com/signetdocs/signet/observability"
)

// Default bounds for placement heuristics.
const (
	// defaultKeepLookahead caps a keep-with-next chain; a chain with no
	// defined end is treated as ending here.
	defaultKeepLookahead = 8
	// orphanMin is the minimum number of flow-text blocks left on each
	// side of a page break within a breakable run.
	orphanMin = 2
)

// Engine lays out measured blocks into pages for one document at a time.
type Engine struct {
	policy        docfmt.Policy
	log           observability.Logger
	measurer      canvas.Measurer
	keepLookahead int
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy replaces the built-in formatting policy table.
func WithPolicy(p docfmt.Policy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithLogger attaches a structured logger.
func WithLogger(l observability.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithMeasurer supplies exact text measurement for the measurement pass.
// Without one, block heights are taken as given by the caller.
func WithMeasurer(m canvas.Measurer) Option {
	return func(e *Engine) { e.measurer = m }
}

// WithKeepLookahead overrides the keep-with-next chain cap.
func WithKeepLookahead(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.keepLookahead = n
		}
	}
}

// New creates an engine with the built-in policy, a nop logger, and no
// measurer.
func New(opts ...Option) *Engine {
	e := &Engine{
		policy:        docfmt.Default(),
		log:           observability.NopLogger{},
		keepLookahead: defaultKeepLookahead,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Layout is the engine entry point: measure the blocks for the document
// type, then place them into pages.
func (e *Engine) Layout(blocks []block.Block, docType string) *Result {
	measured := e.Measure(blocks, docType)
	res := e.Place(measured, docType)
	e.log.Debug("layout complete",
		observability.String("doc_type", docType),
		observability.Int("blocks", len(blocks)),
		observability.Int("pages", res.TotalPages),
		observability.Bool("overflow", res.HasOverflow),
	)
	return res
}
