package layout

import (
	"github.com/signetdocs/signet/block"
	"github.com/signetdocs/signet/observability"
)

// heightEpsilon absorbs float drift in fit comparisons.
const heightEpsilon = 1e-6

// Place is Pass 2: walk measured blocks in document order and assign them
// to pages. Units (single blocks, or keep-with-next groups treated
// atomically) move to a new page whole when they do not fit; a unit
// taller than an empty page is placed anyway and flagged as overflow.
// Breakable text runs are redistributed to avoid leaving a single block
// stranded on either side of a break.
func (e *Engine) Place(measured []block.MeasuredBlock, docType string) *Result {
	res := &Result{}
	if len(measured) == 0 {
		return res
	}

	pageNum := 1
	cur := Page{Number: 1, RemainingHeight: e.policy.UsableArea(docType, 1).Height}

	finishPage := func() {
		res.Pages = append(res.Pages, cur)
		pageNum++
		cur = Page{Number: pageNum, RemainingHeight: e.policy.UsableArea(docType, pageNum).Height}
	}

	place := func(unit []block.MeasuredBlock, h float64) {
		cur.Blocks = append(cur.Blocks, unit...)
		cur.RemainingHeight -= h
		if cur.RemainingHeight < 0 {
			cur.RemainingHeight = 0
		}
	}

	i := 0
	for i < len(measured) {
		unit := e.keepUnit(measured, i)
		unitH := sumHeights(unit)

		switch {
		case unitH <= cur.RemainingHeight+heightEpsilon:
			place(unit, unitH)

		case len(cur.Blocks) > 0:
			nextH := e.policy.UsableArea(docType, pageNum+1).Height
			carried := e.liftTail(&cur, measured, i, unit, unitH, nextH)
			finishPage()
			if carried != nil {
				place([]block.MeasuredBlock{*carried}, carried.Height)
			}
			if unitH > nextH+heightEpsilon {
				// Does not fit even on an empty page.
				res.HasOverflow = true
				e.log.Warn("unit exceeds page capacity",
					observability.Int("page", pageNum),
					observability.Float64("height", unitH),
				)
			}
			place(unit, unitH)

		default:
			// Empty page and the unit still does not fit. Page one may be
			// shortened by a first-page reservation; a unit that fits a
			// full page starts one instead of overflowing.
			next := e.policy.UsableArea(docType, pageNum+1).Height
			if unitH <= next+heightEpsilon && next > cur.RemainingHeight+heightEpsilon {
				finishPage()
				place(unit, unitH)
				break
			}
			// Taller than any page: place it anyway rather than failing.
			res.HasOverflow = true
			e.log.Warn("unit exceeds page capacity",
				observability.Int("page", pageNum),
				observability.Float64("height", unitH),
			)
			place(unit, unitH)
		}
		i += len(unit)
	}
	finishPage()

	// The last page constructed by finishPage is always real content;
	// finishPage never runs on an empty trailing page.
	res.TotalPages = len(res.Pages)
	return res
}

// keepUnit returns the atomic unit starting at i: the block itself plus
// the keep-with-next chain it heads. A chain with no defined end is
// capped at the configured lookahead.
func (e *Engine) keepUnit(measured []block.MeasuredBlock, i int) []block.MeasuredBlock {
	end := i
	for end < len(measured)-1 && measured[end].Block.KeepWithNext && end-i < e.keepLookahead-1 {
		end++
	}
	return measured[i : end+1]
}

func sumHeights(unit []block.MeasuredBlock) float64 {
	total := 0.0
	for _, m := range unit {
		total += m.Height
	}
	return total
}

// liftTail implements orphan/widow avoidance: when a page break occurs
// inside a run of plain breakable text blocks, move the last block of
// the current page forward so neither side of the break is left with a
// single stranded run member. At most one block moves, never the page's
// only block, and never when the tail plus the incoming unit would
// exceed the fresh page's capacity.
func (e *Engine) liftTail(cur *Page, measured []block.MeasuredBlock, i int, unit []block.MeasuredBlock, unitH, nextH float64) *block.MeasuredBlock {
	if len(cur.Blocks) < orphanMin {
		return nil
	}
	if len(unit) != 1 || !unit[0].CanSplit {
		return nil
	}
	tail := cur.Blocks[len(cur.Blocks)-1]
	if !tail.CanSplit || tail.Block.KeepWithNext {
		return nil
	}
	if tail.Height+unitH > nextH+heightEpsilon {
		return nil
	}
	// The break splits a run only if the tail is the block immediately
	// before the incoming unit.
	if i == 0 || measured[i-1].Block != tail.Block {
		return nil
	}

	// Count run members already on the page.
	onPage := 0
	for j := len(cur.Blocks) - 1; j >= 0 && cur.Blocks[j].CanSplit; j-- {
		onPage++
	}
	// Count run members from the unit onward.
	ahead := 0
	for j := i; j < len(measured) && measured[j].CanSplit; j++ {
		ahead++
	}

	// A lone leading run member at the bottom of this page moves forward
	// with its run. A lone trailing member at the top of the next page
	// pulls one companion forward, but only when this page keeps enough
	// run members to avoid creating the opposite problem.
	orphaned := onPage < orphanMin
	widowed := ahead < orphanMin && onPage > orphanMin
	if !orphaned && !widowed {
		return nil
	}

	cur.Blocks = cur.Blocks[:len(cur.Blocks)-1]
	cur.RemainingHeight += tail.Height
	return &tail
}
