package ocr

import (
	"encoding/base64"
	"os"
	"regexp"
	"strings"
	"testing"
)

func pngDataURL(payload string) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte(payload))
}

func TestCombineMarkdownWithImages(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewImageSink(dir)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}

	out := sink.CombineMarkdownWithImages("# Doc", []string{
		pngDataURL("first image"),
		pngDataURL("second image"),
	})

	refs := regexp.MustCompile(`!\[image(\d)\]\(images/([^)]+)\)`).FindAllStringSubmatch(out, -1)
	if len(refs) != 2 {
		t.Fatalf("expected 2 image references, got %d in %q", len(refs), out)
	}
	if refs[0][1] != "1" || refs[1][1] != "2" {
		t.Fatalf("references out of order: %v", refs)
	}
	if refs[0][2] == refs[1][2] {
		t.Fatalf("expected distinct filenames, both %q", refs[0][2])
	}

	for _, ref := range refs {
		if _, err := os.Stat(dir + "/" + ref[2]); err != nil {
			t.Fatalf("referenced file missing on disk: %v", err)
		}
	}

	if !strings.HasPrefix(out, "# Doc") {
		t.Fatalf("original markdown not preserved: %q", out)
	}
}

func TestCombineMarkdownSkipsBadImages(t *testing.T) {
	sink, err := NewImageSink(t.TempDir())
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}

	out := sink.CombineMarkdownWithImages("body", []string{
		"data:image/png;base64,%%%not-base64%%%",
		pngDataURL("good image"),
	})

	if strings.Count(out, "![image") != 1 {
		t.Fatalf("expected one surviving reference, got %q", out)
	}
	// The surviving image keeps its original position number.
	if !strings.Contains(out, "![image2]") {
		t.Fatalf("expected image2 reference, got %q", out)
	}
}

func TestDecodeDataURL(t *testing.T) {
	data, ext, err := decodeDataURL(pngDataURL("payload"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(data) != "payload" || ext != "png" {
		t.Fatalf("unexpected decode result: %q %q", data, ext)
	}

	_, ext, err = decodeDataURL("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("j")))
	if err != nil {
		t.Fatalf("decode jpeg: %v", err)
	}
	if ext != "jpg" {
		t.Fatalf("expected jpg extension, got %q", ext)
	}

	if _, _, err := decodeDataURL(""); err == nil {
		t.Fatalf("expected error for empty input")
	}
	if _, _, err := decodeDataURL("data:image/png;base64,"); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}
