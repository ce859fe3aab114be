package pandoc

import (
	"bytes"
	"context"
	"testing"
)

func TestToDocxWithRealBinary(t *testing.T) {
	if !Available("pandoc") {
		t.Skip("pandoc not installed")
	}

	e := New("pandoc")
	data, err := e.ToDocx(context.Background(), "# Title\n\nInline math $x^2$ here.")
	if err != nil {
		t.Fatalf("to docx: %v", err)
	}
	// DOCX is a zip package.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatalf("expected zip output, got %q", data[:4])
	}
}

func TestMissingBinaryReportsConversionError(t *testing.T) {
	e := New("pandoc-binary-that-does-not-exist")
	if _, err := e.ToDocx(context.Background(), "# Title"); err == nil {
		t.Fatalf("expected error for missing binary")
	}
}
