package markup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/signetdocs/signet/block"
)

func TestParseInlineLayers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []block.Run
	}{
		{
			"plain",
			"no markup here",
			[]block.Run{{Text: "no markup here"}},
		},
		{
			"bold",
			"the **Effective Date** controls",
			[]block.Run{{Text: "the "}, {Text: "Effective Date", Bold: true}, {Text: " controls"}},
		},
		{
			"italic",
			"see *supra* note",
			[]block.Run{{Text: "see "}, {Text: "supra", Italic: true}, {Text: " note"}},
		},
		{
			"bold italic",
			"***strictly confidential***",
			[]block.Run{{Text: "strictly confidential", Bold: true, Italic: true}},
		},
		{
			"layered",
			"***a*** then **b** then *c*",
			[]block.Run{
				{Text: "a", Bold: true, Italic: true},
				{Text: " then "},
				{Text: "b", Bold: true},
				{Text: " then "},
				{Text: "c", Italic: true},
			},
		},
		{
			"link",
			"as defined in [Section 4](#sec4) above",
			[]block.Run{{Text: "as defined in "}, {Text: "Section 4", Link: "#sec4"}, {Text: " above"}},
		},
		{
			"unpaired delimiter degrades",
			"a * b",
			[]block.Run{{Text: "a * b"}},
		},
		{
			"unclosed bold degrades",
			"a **b",
			[]block.Run{{Text: "a **b"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseInline(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("runs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Stripping markup and rejoining runs must reconstruct the plain text
// exactly: formatting removed, characters preserved.
func TestParseInlineRoundTrip(t *testing.T) {
	tests := []struct {
		in    string
		plain string
	}{
		{"This **is** *fine* and ***loud***.", "This is fine and loud."},
		{"no markup", "no markup"},
		{"[linked text](https://example.com) trailing", "linked text trailing"},
		{"**adjacent****bold**", "adjacentbold"},
	}
	for _, tc := range tests {
		runs := ParseInline(tc.in)
		assert.Equal(t, tc.plain, block.PlainText(runs), "input %q", tc.in)
	}
}

func TestHeadingFont(t *testing.T) {
	for _, tc := range []struct {
		level int
		size  float64
		bold  bool
	}{
		{1, 16, true},
		{2, 14, true},
		{3, 12, true},
		{4, 12, false},
		{6, 12, false},
	} {
		size, bold := HeadingFont(tc.level)
		assert.Equal(t, tc.size, size, "level %d", tc.level)
		assert.Equal(t, tc.bold, bold, "level %d", tc.level)
	}
}
