package sigparse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/signetdocs/signet/block"
)

func TestAnalyzeLayoutSingle(t *testing.T) {
	data := &block.SignatureData{
		Layout:  block.Single,
		Parties: []block.Party{{Role: "Tenant"}},
	}
	col := AnalyzeLayout(data, 468)
	assert.Equal(t, 1, col.Columns)
	assert.Equal(t, 468.0, col.ColumnWidth)
	assert.Equal(t, 0.0, col.Spacing)
}

func TestAnalyzeLayoutSideBySide(t *testing.T) {
	data := &block.SignatureData{
		Layout:  block.SideBySide,
		Parties: []block.Party{{Role: "Landlord"}, {Role: "Tenant"}},
	}
	col := AnalyzeLayout(data, 468)
	assert.Equal(t, 2, col.Columns)
	assert.Equal(t, ColumnSpacing, col.Spacing)
	assert.InDelta(t, (468-ColumnSpacing)/2, col.ColumnWidth, 1e-9)

	// Columns plus spacing fill the usable width exactly.
	total := float64(col.Columns)*col.ColumnWidth + float64(col.Columns-1)*col.Spacing
	assert.InDelta(t, 468, total, 1e-9)
}

func TestAnalyzeLayoutThreeParties(t *testing.T) {
	data := &block.SignatureData{
		Layout:  block.SideBySide,
		Parties: []block.Party{{}, {}, {}},
	}
	col := AnalyzeLayout(data, 468)
	assert.Equal(t, 3, col.Columns)
	assert.InDelta(t, (468-2*ColumnSpacing)/3, col.ColumnWidth, 1e-9)
}

func TestAnalyzeLayoutNil(t *testing.T) {
	col := AnalyzeLayout(nil, 400)
	assert.Equal(t, 1, col.Columns)
	assert.Equal(t, 400.0, col.ColumnWidth)
}
