package ocr

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"ocr-backend/internal/shared/telemetry"
)

// ImageSink persists decoded images for markdown embedding.
type ImageSink struct {
	dir string
}

// NewImageSink creates the images directory if absent.
func NewImageSink(dir string) (*ImageSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir images: %w", err)
	}
	return &ImageSink{dir: dir}, nil
}

// Dir returns the images directory path.
func (s *ImageSink) Dir() string { return s.dir }

// CombineMarkdownWithImages decodes each base64 data URL, writes it under the
// images directory with a random name, and appends a Markdown image reference
// to the document. A failing image is logged and skipped; the rest still go
// through.
func (s *ImageSink) CombineMarkdownWithImages(markdown string, images []string) string {
	for i, raw := range images {
		data, ext, err := decodeDataURL(raw)
		if err != nil {
			telemetry.Warn("ocr.embed.skip", map[string]any{"index": i, "err": err.Error()})
			continue
		}

		name := uuid.NewString() + "." + ext
		if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
			telemetry.Warn("ocr.embed.skip", map[string]any{"index": i, "err": err.Error()})
			continue
		}

		markdown += fmt.Sprintf("\n\n![image%d](images/%s)", i+1, name)
	}
	return markdown
}
