package native

import (
	"context"

	"ocr-backend/internal/convert"
)

// Engine renders Markdown to DOCX and PDF in-process, without an external
// binary. Math spans are carried through as literal dollar-delimited text.
type Engine struct {
	// FontPath points at a TTF with wide glyph coverage for PDF output.
	// Empty or missing falls back to the built-in core font.
	FontPath string
}

// New constructs a native engine.
func New(fontPath string) *Engine {
	return &Engine{FontPath: fontPath}
}

// ToDocx converts markdown to a minimal OOXML package.
func (e *Engine) ToDocx(ctx context.Context, markdown string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, convert.Wrap("docx", err)
	}
	data, err := buildDocx(parseBlocks(markdown))
	return data, convert.Wrap("docx", err)
}

// ToPdf converts markdown to PDF bytes.
func (e *Engine) ToPdf(ctx context.Context, markdown string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, convert.Wrap("pdf", err)
	}
	data, err := renderPdf(parseBlocks(markdown), e.FontPath)
	return data, convert.Wrap("pdf", err)
}

var _ convert.Converter = (*Engine)(nil)
