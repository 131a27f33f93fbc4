package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signetdocs/signet/block"
)

// testUsable is the page capacity for an unknown document type: letter
// height minus one-inch top and bottom margins.
const testUsable = 792.0 - 72 - 72

// para builds a breakable text block with a fixed measured height.
func para(h float64) block.Block {
	return block.Block{
		Kind:      block.Text,
		Runs:      []block.Run{{Text: "x"}},
		Height:    h,
		Breakable: true,
	}
}

// solid builds an unbreakable block with a fixed measured height.
func solid(h float64) block.Block {
	return block.Block{
		Kind:   block.Table,
		Table:  &block.TableData{Rows: [][]string{{"x"}}},
		Height: h,
	}
}

func placeBlocks(t *testing.T, e *Engine, blocks []block.Block) *Result {
	t.Helper()
	return e.Place(e.Measure(blocks, "test"), "test")
}

func pageHeights(p Page) []float64 {
	out := make([]float64, len(p.Blocks))
	for i, m := range p.Blocks {
		out[i] = m.Height
	}
	return out
}

func TestPlaceEmpty(t *testing.T) {
	res := New().Layout(nil, "test")
	assert.Zero(t, res.TotalPages)
	assert.Empty(t, res.Pages)
	assert.False(t, res.HasOverflow)
}

func TestPlaceFitAndBreak(t *testing.T) {
	e := New()
	res := placeBlocks(t, e, []block.Block{para(100), solid(500), solid(600)})

	require.Equal(t, 2, res.TotalPages)
	assert.Equal(t, []float64{100, 500}, pageHeights(res.Pages[0]))
	assert.InDelta(t, testUsable-600, res.Pages[0].RemainingHeight, 1e-9)
	assert.Equal(t, []float64{600}, pageHeights(res.Pages[1]))
	assert.InDelta(t, testUsable-600, res.Pages[1].RemainingHeight, 1e-9)
	assert.False(t, res.HasOverflow)
}

func TestPlaceExactFit(t *testing.T) {
	e := New()
	res := placeBlocks(t, e, []block.Block{solid(testUsable), solid(10)})

	require.Equal(t, 2, res.TotalPages)
	assert.Zero(t, res.Pages[0].RemainingHeight, "a block exactly the page height fills it")
	assert.Equal(t, []float64{10}, pageHeights(res.Pages[1]))
}

func TestPlaceKeepWithNextMovesWhole(t *testing.T) {
	heading := block.Block{Kind: block.Heading, Level: 2, Runs: []block.Run{{Text: "Term"}},
		Height: 30, KeepWithNext: true}

	e := New()
	res := placeBlocks(t, e, []block.Block{solid(550), heading, para(100)})

	require.Equal(t, 2, res.TotalPages)
	assert.Equal(t, []float64{550}, pageHeights(res.Pages[0]),
		"heading never strands at the bottom of a page")
	assert.Equal(t, []float64{30, 100}, pageHeights(res.Pages[1]))
}

func TestPlaceKeepChain(t *testing.T) {
	heading := func(h float64) block.Block {
		return block.Block{Kind: block.Heading, Runs: []block.Run{{Text: "h"}},
			Height: h, KeepWithNext: true}
	}

	// heading -> heading -> paragraph travels as one unit.
	e := New()
	res := placeBlocks(t, e, []block.Block{solid(500), heading(30), heading(30), para(100)})

	require.Equal(t, 2, res.TotalPages)
	assert.Len(t, res.Pages[1].Blocks, 3)
}

func TestPlaceKeepLookaheadCap(t *testing.T) {
	e := New(WithKeepLookahead(3))

	blocks := make([]block.Block, 6)
	for i := range blocks {
		blocks[i] = block.Block{Kind: block.Heading, Runs: []block.Run{{Text: "h"}},
			Height: 10, KeepWithNext: true}
	}
	unit := e.keepUnit(e.Measure(blocks, "test"), 0)
	assert.Len(t, unit, 3, "an unterminated chain is cut at the lookahead")
}

func TestPlaceSignatureAtomic(t *testing.T) {
	sig := block.Block{
		Kind: block.Signature,
		Signature: &block.SignatureData{
			Parties: []block.Party{{Role: "Tenant"}},
		},
		Height: 300,
	}

	e := New()
	res := placeBlocks(t, e, []block.Block{solid(400), sig})

	require.Equal(t, 2, res.TotalPages)
	assert.Equal(t, []float64{400}, pageHeights(res.Pages[0]))
	require.Len(t, res.Pages[1].Blocks, 1)
	assert.Equal(t, block.Signature, res.Pages[1].Blocks[0].Block.Kind,
		"signature blocks never split across pages")
}

func TestPlaceOversized(t *testing.T) {
	e := New()

	res := placeBlocks(t, e, []block.Block{solid(700)})
	require.Equal(t, 1, res.TotalPages)
	assert.True(t, res.HasOverflow)
	assert.Zero(t, res.Pages[0].RemainingHeight)

	// After existing content the oversized unit still gets its own page.
	res = placeBlocks(t, e, []block.Block{para(100), solid(700)})
	require.Equal(t, 2, res.TotalPages)
	assert.True(t, res.HasOverflow)
	assert.Equal(t, []float64{700}, pageHeights(res.Pages[1]))
}

func TestPlaceOrphanLifted(t *testing.T) {
	// A lone paragraph trapped under a tall table moves forward with the
	// rest of its run.
	e := New()
	res := placeBlocks(t, e, []block.Block{solid(500), para(100), para(200)})

	require.Equal(t, 2, res.TotalPages)
	assert.Equal(t, []float64{500}, pageHeights(res.Pages[0]))
	assert.Equal(t, []float64{100, 200}, pageHeights(res.Pages[1]))
}

func TestPlaceWidowPullsCompanion(t *testing.T) {
	// D alone on page two would be a widow; C comes forward to join it.
	e := New()
	res := placeBlocks(t, e, []block.Block{para(200), para(200), para(200), para(100)})

	require.Equal(t, 2, res.TotalPages)
	assert.Equal(t, []float64{200, 200}, pageHeights(res.Pages[0]))
	assert.Equal(t, []float64{200, 100}, pageHeights(res.Pages[1]))
}

func TestPlaceNoLiftWhenRunLongEnough(t *testing.T) {
	// Both sides of the break keep two run members; nothing moves.
	e := New()
	res := placeBlocks(t, e, []block.Block{para(300), para(300), para(300), para(300)})

	require.Equal(t, 2, res.TotalPages)
	assert.Equal(t, []float64{300, 300}, pageHeights(res.Pages[0]))
	assert.Equal(t, []float64{300, 300}, pageHeights(res.Pages[1]))
}

func TestPlaceLiftRefusedWhenPageWouldOverfill(t *testing.T) {
	// Lifting the 100pt tail next to the 600pt paragraph would put 700pt
	// on a 648pt page; the orphan stays put instead.
	e := New()
	res := placeBlocks(t, e, []block.Block{solid(500), para(100), para(600)})

	require.Equal(t, 2, res.TotalPages)
	assert.Equal(t, []float64{500, 100}, pageHeights(res.Pages[0]))
	assert.Equal(t, []float64{600}, pageHeights(res.Pages[1]))
	assert.False(t, res.HasOverflow, "600 fits an empty page")
	for _, p := range res.Pages {
		assert.GreaterOrEqual(t, p.RemainingHeight, 0.0)
		assert.LessOrEqual(t, sumHeights(p.Blocks), testUsable+heightEpsilon,
			"no page holds more than its capacity")
	}
}

func TestPlaceNeverLiftsOnlyBlock(t *testing.T) {
	e := New()
	res := placeBlocks(t, e, []block.Block{para(600), para(100), para(100)})

	require.Equal(t, 2, res.TotalPages)
	assert.NotEmpty(t, res.Pages[0].Blocks, "a page is never emptied by redistribution")
}

func TestPlaceSequentialNumbers(t *testing.T) {
	blocks := make([]block.Block, 13)
	for i := range blocks {
		blocks[i] = para(100)
	}
	e := New()
	res := placeBlocks(t, e, blocks)

	for i, p := range res.Pages {
		assert.Equal(t, i+1, p.Number)
	}
	assert.Equal(t, len(res.Pages), res.TotalPages)

	// Total pages stays within the theoretical minimum.
	want := int(math.Ceil(13 * 100 / testUsable))
	assert.Equal(t, want, res.TotalPages)
}

func TestPlaceFirstPageReservation(t *testing.T) {
	// Filings lose 36 points of page one to the caption header.
	e := New()
	measured := e.Measure([]block.Block{solid(620), solid(20)}, "filing")
	res := e.Place(measured, "filing")

	require.Equal(t, 2, res.TotalPages)
	assert.Equal(t, []float64{620, 20}, pageHeights(res.Pages[1]),
		"620 exceeds the shortened first page and starts page two")
	assert.Empty(t, res.Pages[0].Blocks)
	assert.False(t, res.HasOverflow)
}
