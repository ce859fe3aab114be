package exports

import (
	"context"
	"strings"

	"ocr-backend/internal/convert"
)

// Document describes a generated output file.
type Document struct {
	Filename string
	Path     string
}

// Service converts markdown and persists the result in the output store.
type Service struct {
	Converter convert.Converter
	Store     *Store
}

// Export converts markdown into format ("docx" or "pdf") and stores the
// generated bytes under a fresh uuid filename.
func (s *Service) Export(ctx context.Context, markdown, format string) (Document, error) {
	if strings.TrimSpace(markdown) == "" {
		return Document{}, ErrEmptyMarkdown
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case "docx":
		data, err = s.Converter.ToDocx(ctx, markdown)
	case "pdf":
		data, err = s.Converter.ToPdf(ctx, markdown)
	default:
		return Document{}, ErrUnknownFormat
	}
	if err != nil {
		return Document{}, err
	}

	name, err := s.Store.Save(format, data)
	if err != nil {
		return Document{}, err
	}
	return Document{Filename: name, Path: s.Store.dir + "/" + name}, nil
}
