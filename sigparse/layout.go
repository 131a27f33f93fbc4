package sigparse

import "github.com/signetdocs/signet/block"

// ColumnSpacing is the gap between side-by-side party columns, in points.
const ColumnSpacing = 36.0

// ColumnLayout is the rendering geometry for a signature block's party
// columns.
type ColumnLayout struct {
	Columns     int
	ColumnWidth float64
	Spacing     float64
	Alignment   string // "left"; reserved for future conventions
}

// AnalyzeLayout computes the column geometry for a signature block within
// the given usable width. It is a pure function of its inputs: the number
// of columns equals the number of parties arranged together (commonly one
// or two) and the usable width minus inter-column spacing divides evenly
// among them.
func AnalyzeLayout(data *block.SignatureData, usableWidth float64) ColumnLayout {
	cols := 1
	if data != nil && data.Layout == block.SideBySide && len(data.Parties) > 1 {
		cols = len(data.Parties)
	}
	spacing := ColumnSpacing
	if cols == 1 {
		spacing = 0
	}
	width := (usableWidth - spacing*float64(cols-1)) / float64(cols)
	return ColumnLayout{
		Columns:     cols,
		ColumnWidth: width,
		Spacing:     spacing,
		Alignment:   "left",
	}
}
