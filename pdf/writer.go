package pdf

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// WriteTo serializes the document: header, catalog, page tree, font
// dictionaries, page and content objects, cross-reference table and
// trailer. Content streams are written uncompressed.
func (b *builderImpl) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")

	type fontEntry struct {
		base string
		res  string
	}
	var fonts []fontEntry
	for base, res := range b.fonts {
		fonts = append(fonts, fontEntry{base, res})
	}
	sort.Slice(fonts, func(i, j int) bool { return fonts[i].res < fonts[j].res })

	// Object numbering: 1 catalog, 2 pages, 3..2+F fonts, then for each
	// page i: page object followed by its content stream.
	firstFontObj := 3
	firstPageObj := firstFontObj + len(fonts)
	pageObj := func(i int) int { return firstPageObj + 2*i }
	contentObj := func(i int) int { return firstPageObj + 2*i + 1 }
	totalObjs := firstPageObj + 2*len(b.pages) - 1

	offsets := make([]int, totalObjs+1)
	writeObj := func(id int, body string) {
		offsets[id] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", id, body)
	}

	kids := ""
	for i := range b.pages {
		kids += fmt.Sprintf("%d 0 R ", pageObj(i))
	}
	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, len(b.pages)))

	fontDict := "<< "
	for i, f := range fonts {
		writeObj(firstFontObj+i, fmt.Sprintf(
			"<< /Type /Font /Subtype /Type1 /BaseFont /%s /Encoding /WinAnsiEncoding >>", f.base))
		fontDict += fmt.Sprintf("/%s %d 0 R ", f.res, firstFontObj+i)
	}
	fontDict += ">>"
	resources := fmt.Sprintf("<< /Font %s >>", fontDict)

	for i, p := range b.pages {
		writeObj(pageObj(i), fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %s %s] /Resources %s /Contents %d 0 R >>",
			num(p.width), num(p.height), resources, contentObj(i)))
		offsets[contentObj(i)] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n", contentObj(i), p.content.Len())
		buf.Write(p.content.Bytes())
		buf.WriteString("endstream\nendobj\n")
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", totalObjs+1)
	buf.WriteString("0000000000 65535 f \n")
	for id := 1; id <= totalObjs; id++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[id])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		totalObjs+1, xrefStart)

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}
