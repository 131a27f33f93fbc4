package sigparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signetdocs/signet/block"
	"github.com/signetdocs/signet/markup"
)

const leaseText = `# LEASE

The parties execute this lease as of the date below.

[SIGNATURE_BLOCK:landlord]

[SIGNATURE_BLOCK:tenant]

Initial each page.

[INITIALS_BLOCK:tenant-initials]
`

func leaseMeta() Metadata {
	return Metadata{
		"landlord": {
			Parties:   []PartySpec{{Role: "Landlord", Name: "Jordan Reese"}},
			GroupWith: []string{"tenant"},
		},
		"tenant": {
			Parties:   []PartySpec{{Role: "Tenant", Name: "Casey Bloom"}},
			GroupWith: []string{"landlord"},
		},
		"tenant-initials": {
			Parties: []PartySpec{{Role: "Tenant"}},
		},
	}
}

func TestScan(t *testing.T) {
	markers := Scan(leaseText)
	require.Len(t, markers, 3)

	assert.Equal(t, block.MarkerSignature, markers[0].Kind)
	assert.Equal(t, "landlord", markers[0].ID)
	assert.Equal(t, "[SIGNATURE_BLOCK:landlord]", markers[0].Raw)

	assert.Equal(t, "tenant", markers[1].ID)

	assert.Equal(t, block.MarkerInitials, markers[2].Kind)
	assert.Equal(t, "tenant-initials", markers[2].ID)
}

func TestScanIgnoresInlineMarkers(t *testing.T) {
	assert.Empty(t, Scan("see [SIGNATURE_BLOCK:x] inline"))
	assert.Empty(t, Scan("[SIGNATURE_BLOCK:bad id]"))
}

func TestResolve(t *testing.T) {
	meta := leaseMeta()
	m := Scan(leaseText)[0]

	data, err := Resolve(m, meta)
	require.NoError(t, err)
	require.Len(t, data.Parties, 1)
	assert.Equal(t, "Landlord", data.Parties[0].Role)
	assert.Equal(t, block.SignatureLine, data.Parties[0].LineType)
	assert.Equal(t, block.Single, data.Layout)
	assert.False(t, data.NotaryRequired)
}

func TestResolveUnknownMarker(t *testing.T) {
	_, err := Resolve(block.Marker{ID: "ghost"}, Metadata{})
	assert.ErrorIs(t, err, ErrUnknownMarker)
}

func TestResolveNotaryMarker(t *testing.T) {
	meta := Metadata{"ack": {Parties: []PartySpec{{
		Role:   "Notary Public",
		Notary: &block.NotaryInfo{State: "Ohio", County: "Franklin"},
	}}}}
	data, err := Resolve(block.Marker{Kind: block.MarkerNotary, ID: "ack"}, meta)
	require.NoError(t, err)
	assert.True(t, data.NotaryRequired, "notary markers always require the acknowledgment")
}

func TestInjectGroupsSideBySide(t *testing.T) {
	blocks := Inject(markup.Parse(leaseText), leaseMeta())

	var sigs []*block.SignatureData
	for i := range blocks {
		if blocks[i].Kind == block.Signature {
			sigs = append(sigs, blocks[i].Signature)
		}
	}
	require.Len(t, sigs, 2, "grouped pair merges into one block; initials stay separate")

	merged := sigs[0]
	assert.Equal(t, block.SideBySide, merged.Layout)
	require.Len(t, merged.Parties, 2)
	assert.Equal(t, "Landlord", merged.Parties[0].Role)
	assert.Equal(t, "Tenant", merged.Parties[1].Role)

	initials := sigs[1]
	assert.Equal(t, block.Single, initials.Layout)
	assert.Equal(t, block.InitialsLine, initials.Parties[0].LineType)
}

func TestInjectDegradesUnknownMarker(t *testing.T) {
	blocks := Inject(markup.Parse("[SIGNATURE_BLOCK:ghost]\n"), Metadata{})
	require.Len(t, blocks, 1)
	assert.Equal(t, block.Text, blocks[0].Kind, "unresolvable marker stays plain text")
	assert.Equal(t, "[SIGNATURE_BLOCK:ghost]", blocks[0].PlainText())
}

func TestInjectMarkerAdjacentToProse(t *testing.T) {
	meta := Metadata{"tenant": {Parties: []PartySpec{{Role: "Tenant"}}}}
	blocks := Inject(markup.Parse("The tenant signs below.\n[SIGNATURE_BLOCK:tenant]\nExecuted as of the date above.\n"), meta)

	require.Len(t, blocks, 3)
	assert.Equal(t, block.Text, blocks[0].Kind)
	require.Equal(t, block.Signature, blocks[1].Kind,
		"a marker needs its own line, not its own paragraph")
	assert.Equal(t, "Tenant", blocks[1].Signature.Parties[0].Role)
	assert.Equal(t, block.Text, blocks[2].Kind)
}

func TestInjectWithoutGroupingStaysSingle(t *testing.T) {
	meta := leaseMeta()
	a := meta["landlord"]
	a.GroupWith = nil
	meta["landlord"] = a

	blocks := Inject(markup.Parse(leaseText), meta)
	var sigs int
	for i := range blocks {
		if blocks[i].Kind == block.Signature {
			sigs++
			assert.Equal(t, block.Single, blocks[i].Signature.Layout)
		}
	}
	assert.Equal(t, 3, sigs, "no mutual grouping keeps three separate blocks")
}
