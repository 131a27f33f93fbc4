package docfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumeric(t *testing.T) {
	f := PageNumberFormat{Style: StyleNumeric}
	assert.Equal(t, "1", f.Format(1))
	assert.Equal(t, "42", f.Format(42))
}

func TestFormatRoman(t *testing.T) {
	f := PageNumberFormat{Style: StyleRoman}
	for n, want := range map[int]string{
		1: "i", 2: "ii", 4: "iv", 9: "ix", 14: "xiv", 40: "xl", 1999: "mcmxcix",
	} {
		assert.Equal(t, want, f.Format(n), "n=%d", n)
	}
}

func TestFormatAlphaRollsOver(t *testing.T) {
	f := PageNumberFormat{Style: StyleAlpha}
	for n, want := range map[int]string{
		1: "a", 26: "z", 27: "aa", 28: "ab", 52: "az", 53: "ba", 703: "aaa",
	} {
		assert.Equal(t, want, f.Format(n), "n=%d", n)
	}
}

func TestFormatPrefixSuffix(t *testing.T) {
	f := PageNumberFormat{Style: StyleNumeric, Prefix: "Page ", Suffix: " of record"}
	assert.Equal(t, "Page 7 of record", f.Format(7))

	dashed := PageNumberFormat{Style: StyleNumeric, Prefix: "- ", Suffix: " -"}
	assert.Equal(t, "- 3 -", dashed.Format(3))
}

func TestFormatClampsBelowOne(t *testing.T) {
	f := PageNumberFormat{Style: StyleNumeric}
	assert.Equal(t, "1", f.Format(0))
}
