package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Line
	}{
		{"blank", "   ", Line{Class: LineBlank}},
		{"plain", "The parties agree as follows.", Line{Class: LinePlain, Content: "The parties agree as follows."}},
		{"h1", "# RESIDENTIAL LEASE", Line{Class: LineHeading, Content: "RESIDENTIAL LEASE", Level: 1}},
		{"h3", "### Section 2. Rent", Line{Class: LineHeading, Content: "Section 2. Rent", Level: 3}},
		{"h6", "###### deep", Line{Class: LineHeading, Content: "deep", Level: 6}},
		{"seven hashes is plain", "####### nope", Line{Class: LinePlain, Content: "####### nope"}},
		{"no space after hash", "#tag", Line{Class: LinePlain, Content: "#tag"}},
		{"rule dashes", "---", Line{Class: LineRule}},
		{"rule stars spaced", "* * *", Line{Class: LineRule}},
		{"rule underscores", "_____", Line{Class: LineRule}},
		{"mixed rule chars is plain", "-*-", Line{Class: LinePlain, Content: "-*-"}},
		{"quote", "> quoted text", Line{Class: LineBlockquote, Content: "quoted text"}},
		{"bare quote", ">", Line{Class: LineBlockquote}},
		{"unordered dash", "- first item", Line{Class: LineUnorderedItem, Content: "first item"}},
		{"unordered nested", "    - nested", Line{Class: LineUnorderedItem, Content: "nested", Indent: 2}},
		{"ordered", "3. third item", Line{Class: LineOrderedItem, Content: "third item", Index: 3}},
		{"ordered paren", "12) twelfth", Line{Class: LineOrderedItem, Content: "twelfth", Index: 12}},
		{"table row", "| Name | Amount |", Line{Class: LineTableRow, Cells: []string{"Name", "Amount"}}},
		{"table separator", "|---|:---:|", Line{Class: LineTableSep}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyLine(tc.in))
		})
	}
}

func TestClassifyLineNeverPanics(t *testing.T) {
	for _, in := range []string{"", "#", "##", ">", "|", "1.", "- ", "999999999999999999999. x"} {
		_ = ClassifyLine(in)
	}
}
