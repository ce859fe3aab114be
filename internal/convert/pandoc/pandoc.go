package pandoc

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"ocr-backend/internal/convert"
)

// Engine shells out to pandoc. Math stays dollar-delimited on the way in:
// pandoc renders it as native OMML for DOCX and hands it to a LaTeX engine
// for PDF.
type Engine struct {
	binary    string
	pdfEngine string
}

// New constructs a pandoc engine using the given binary name.
func New(binary string) *Engine {
	if strings.TrimSpace(binary) == "" {
		binary = "pandoc"
	}
	return &Engine{binary: binary, pdfEngine: "xelatex"}
}

// Available reports whether the pandoc binary can be found on PATH.
func Available(binary string) bool {
	if strings.TrimSpace(binary) == "" {
		binary = "pandoc"
	}
	_, err := exec.LookPath(binary)
	return err == nil
}

// ToDocx converts markdown to DOCX bytes.
func (e *Engine) ToDocx(ctx context.Context, markdown string) ([]byte, error) {
	out, err := e.run(ctx, markdown, "-f", "markdown+tex_math_dollars", "-t", "docx", "-o", "-")
	return out, convert.Wrap("docx", err)
}

// ToPdf converts markdown to PDF bytes. pandoc insists on a seekable output
// for PDF, so it goes through a temp file.
func (e *Engine) ToPdf(ctx context.Context, markdown string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "pandoc-pdf-")
	if err != nil {
		return nil, convert.Wrap("pdf", err)
	}
	defer os.RemoveAll(dir)

	outPath := filepath.Join(dir, "out.pdf")
	_, err = e.run(ctx, markdown,
		"-f", "markdown+tex_math_dollars",
		"--pdf-engine="+e.pdfEngine,
		"-o", outPath)
	if err != nil {
		return nil, convert.Wrap("pdf", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, convert.Wrap("pdf", err)
	}
	return data, nil
}

func (e *Engine) run(ctx context.Context, markdown string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, e.binary, args...)
	cmd.Stdin = strings.NewReader(markdown)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("pandoc: %s", msg)
	}
	return stdout.Bytes(), nil
}

var _ convert.Converter = (*Engine)(nil)
