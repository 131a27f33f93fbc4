package docfmt

import "strconv"

// Format renders a 1-based page number in the configured style with
// prefix and suffix applied.
func (f PageNumberFormat) Format(n int) string {
	if n < 1 {
		n = 1
	}
	var body string
	switch f.Style {
	case StyleRoman:
		body = roman(n)
	case StyleAlpha:
		body = alpha(n)
	default:
		body = strconv.Itoa(n)
	}
	return f.Prefix + body + f.Suffix
}

var romanPairs = []struct {
	value int
	sym   string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

func roman(n int) string {
	var out []byte
	for _, p := range romanPairs {
		for n >= p.value {
			out = append(out, p.sym...)
			n -= p.value
		}
	}
	return string(out)
}

// alpha is bijective base 26: a..z, then aa, ab...
func alpha(n int) string {
	var out []byte
	for n > 0 {
		n--
		out = append([]byte{byte('a' + n%26)}, out...)
		n /= 26
	}
	return string(out)
}
