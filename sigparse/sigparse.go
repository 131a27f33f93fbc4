// Package sigparse locates signature placement markers in drafted text
// and resolves them, using party metadata supplied by the template
// system, into structured signature blocks. It also owns the pure
// geometry function used by the layout engine to arrange party columns.
package sigparse

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/signetdocs/signet/block"
)

// Markers must occupy a line of their own.
var markerRe = regexp.MustCompile(`^\[(SIGNATURE_BLOCK|INITIALS_BLOCK|NOTARY_BLOCK):([A-Za-z0-9_.-]+)\]$`)

// ErrUnknownMarker reports a marker with no metadata entry.
var ErrUnknownMarker = errors.New("sigparse: no metadata for marker")

// PartySpec is the side-channel description of one signer, supplied by
// the upstream template system rather than derived from prose.
type PartySpec struct {
	Role     string            `yaml:"role"`
	Name     string            `yaml:"name,omitempty"`
	Title    string            `yaml:"title,omitempty"`
	Company  string            `yaml:"company,omitempty"`
	Date     string            `yaml:"date,omitempty"`
	Initials bool              `yaml:"initials,omitempty"`
	Notary   *block.NotaryInfo `yaml:"notary,omitempty"`
}

// BlockSpec is the metadata for one marker ID.
type BlockSpec struct {
	Parties        []PartySpec `yaml:"parties"`
	GroupWith      []string    `yaml:"group_with,omitempty"`
	NotaryRequired bool        `yaml:"notary_required,omitempty"`
}

// Metadata maps marker IDs to their block specifications.
type Metadata map[string]BlockSpec

// Scan finds all placement markers in the source text. Markers embedded
// mid-line are ignored.
func Scan(text string) []block.Marker {
	var markers []block.Marker
	offset := 0
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if m := markerRe.FindStringSubmatch(line); m != nil {
			markers = append(markers, block.Marker{
				Kind:  markerKind(m[1]),
				ID:    m[2],
				Raw:   line,
				Line:  i,
				Start: offset,
				End:   offset + len(raw),
			})
		}
		offset += len(raw) + 1
	}
	return markers
}

func markerKind(tag string) block.MarkerKind {
	switch tag {
	case "INITIALS_BLOCK":
		return block.MarkerInitials
	case "NOTARY_BLOCK":
		return block.MarkerNotary
	}
	return block.MarkerSignature
}

// Resolve builds the signature data for one marker from its metadata.
// Grouping with other markers is decided by the caller (see Inject);
// Resolve always produces a single-column arrangement.
func Resolve(m block.Marker, meta Metadata) (*block.SignatureData, error) {
	spec, ok := meta[m.ID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMarker, m.ID)
	}
	data := &block.SignatureData{
		Marker:         m,
		Layout:         block.Single,
		NotaryRequired: spec.NotaryRequired || m.Kind == block.MarkerNotary,
	}
	for _, p := range spec.Parties {
		data.Parties = append(data.Parties, resolveParty(p, m.Kind))
	}
	return data, nil
}

func resolveParty(p PartySpec, kind block.MarkerKind) block.Party {
	lt := block.SignatureLine
	if p.Initials || kind == block.MarkerInitials {
		lt = block.InitialsLine
	}
	return block.Party{
		Role:     p.Role,
		Name:     p.Name,
		Title:    p.Title,
		Company:  p.Company,
		Date:     p.Date,
		LineType: lt,
		Notary:   p.Notary,
	}
}

// Inject replaces marker-only text blocks in a parsed block stream with
// resolved signature blocks. Markers whose metadata declares mutual
// group_with relationships are merged into one side-by-side block at the
// position of the first member. A marker with no metadata degrades to
// the plain text of its marker line.
func Inject(blocks []block.Block, meta Metadata) []block.Block {
	grouped := make(map[string]bool) // IDs already folded into an earlier block
	var out []block.Block

	for i := range blocks {
		b := blocks[i]
		m, ok := markerOf(&b)
		if !ok {
			out = append(out, b)
			continue
		}
		if grouped[m.ID] {
			continue
		}
		data, err := Resolve(m, meta)
		if err != nil {
			// Degrade to plain text rather than aborting.
			out = append(out, b)
			continue
		}
		for _, peer := range meta[m.ID].GroupWith {
			if !mutualGroup(meta, m.ID, peer) {
				continue
			}
			pm, pdata := findMarker(blocks[i+1:], peer, meta)
			if pdata == nil {
				continue
			}
			grouped[pm.ID] = true
			data.Layout = block.SideBySide
			data.Parties = append(data.Parties, pdata.Parties...)
			data.NotaryRequired = data.NotaryRequired || pdata.NotaryRequired
		}
		out = append(out, block.Block{Kind: block.Signature, Signature: data})
	}
	return out
}

// markerOf reports whether a block is a bare marker line.
func markerOf(b *block.Block) (block.Marker, bool) {
	if b.Kind != block.Text {
		return block.Marker{}, false
	}
	line := strings.TrimSpace(b.PlainText())
	m := markerRe.FindStringSubmatch(line)
	if m == nil {
		return block.Marker{}, false
	}
	return block.Marker{Kind: markerKind(m[1]), ID: m[2], Raw: line}, true
}

func mutualGroup(meta Metadata, a, b string) bool {
	spec, ok := meta[b]
	if !ok {
		return false
	}
	for _, peer := range spec.GroupWith {
		if peer == a {
			return true
		}
	}
	return false
}

func findMarker(blocks []block.Block, id string, meta Metadata) (block.Marker, *block.SignatureData) {
	for i := range blocks {
		m, ok := markerOf(&blocks[i])
		if !ok || m.ID != id {
			continue
		}
		data, err := Resolve(m, meta)
		if err != nil {
			return m, nil
		}
		return m, data
	}
	return block.Marker{}, nil
}
