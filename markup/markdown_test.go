package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signetdocs/signet/block"
)

func TestFromMarkdown(t *testing.T) {
	src := []byte(`# Title

A paragraph with **bold** and *italic* text.

- first
- second

---

Done.
`)
	blocks, err := FromMarkdown(src)
	require.NoError(t, err)
	require.Len(t, blocks, 6)

	assert.Equal(t, block.Heading, blocks[0].Kind)
	assert.Equal(t, 1, blocks[0].Level)
	assert.True(t, blocks[0].KeepWithNext)

	require.Equal(t, block.Text, blocks[1].Kind)
	assert.Equal(t, "A paragraph with bold and italic text.", blocks[1].PlainText())
	var sawBold, sawItalic bool
	for _, r := range blocks[1].Runs {
		if r.Bold {
			sawBold = true
			assert.Equal(t, "bold", r.Text)
		}
		if r.Italic {
			sawItalic = true
			assert.Equal(t, "italic", r.Text)
		}
	}
	assert.True(t, sawBold)
	assert.True(t, sawItalic)

	require.Equal(t, block.ListItem, blocks[2].Kind)
	assert.Equal(t, "first", block.PlainText(blocks[2].Item.Runs))
	assert.False(t, blocks[2].Item.Ordered)
	require.Equal(t, block.ListItem, blocks[3].Kind)

	assert.Equal(t, block.Rule, blocks[4].Kind)
	assert.Equal(t, block.Text, blocks[5].Kind)
}

func TestFromMarkdownAndParseAgree(t *testing.T) {
	src := "## Heading\n\nPlain paragraph text.\n"
	fromMD, err := FromMarkdown([]byte(src))
	require.NoError(t, err)
	fromLines := Parse(src)
	require.Len(t, fromMD, len(fromLines))
	for i := range fromMD {
		assert.Equal(t, fromLines[i].Kind, fromMD[i].Kind, "block %d", i)
		assert.Equal(t, fromLines[i].PlainText(), fromMD[i].PlainText(), "block %d", i)
	}
}
