package native

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
)

const sampleMarkdown = `# Physics Notes

The famous identity $E=mc^2$ relates mass and energy.

| Quantity | Symbol |
| --- | --- |
| Energy | E |
| Mass | m |

- light is fast
- mass is heavy
`

func TestParseBlocks(t *testing.T) {
	blocks := parseBlocks(sampleMarkdown)

	var kinds []blockKind
	for _, b := range blocks {
		kinds = append(kinds, b.kind)
	}
	want := []blockKind{blockHeading, blockParagraph, blockTable, blockList}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d blocks, got %d (%v)", len(want), len(kinds), kinds)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Fatalf("block %d: expected kind %d, got %d", i, k, kinds[i])
		}
	}

	if blocks[0].text != "Physics Notes" || blocks[0].level != 1 {
		t.Fatalf("unexpected heading: %+v", blocks[0])
	}
	if !strings.Contains(blocks[1].text, "$E=mc^2$") {
		t.Fatalf("inline math lost from paragraph: %q", blocks[1].text)
	}
	if len(blocks[2].rows) != 3 || blocks[2].rows[0][0] != "Quantity" || blocks[2].rows[1][1] != "E" {
		t.Fatalf("unexpected table rows: %v", blocks[2].rows)
	}
	if len(blocks[3].items) != 2 || blocks[3].items[0] != "light is fast" {
		t.Fatalf("unexpected list items: %v", blocks[3].items)
	}
}

func TestToDocxRoundTrip(t *testing.T) {
	e := New("")
	data, err := e.ToDocx(context.Background(), sampleMarkdown)
	if err != nil {
		t.Fatalf("to docx: %v", err)
	}

	text := extractDocxText(t, data)
	for _, want := range []string{"Physics Notes", "$E=mc^2$", "Quantity", "Energy", "light is fast"} {
		if !strings.Contains(text, want) {
			t.Fatalf("docx text missing %q:\n%s", want, text)
		}
	}
}

func TestToPdfRoundTrip(t *testing.T) {
	e := New("")
	data, err := e.ToPdf(context.Background(), sampleMarkdown)
	if err != nil {
		t.Fatalf("to pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF, starts with %q", data[:8])
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		t.Fatalf("extract pdf text: %v", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		t.Fatalf("copy pdf text: %v", err)
	}
	for _, want := range []string{"Physics Notes", "Quantity"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("pdf text missing %q:\n%s", want, buf.String())
		}
	}
}

func TestToPdfCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New("").ToPdf(ctx, "hello"); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}

// extractDocxText reads word/document.xml from the package and strips the
// markup, inserting newlines at paragraph ends.
func extractDocxText(t *testing.T, data []byte) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open docx zip: %v", err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		t.Fatalf("word/document.xml not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		t.Fatalf("open document.xml: %v", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var sb strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("decode document.xml: %v", err)
		}
		switch el := tok.(type) {
		case xml.CharData:
			sb.WriteString(string(el))
		case xml.EndElement:
			if el.Name.Local == "p" {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
