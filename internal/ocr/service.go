package ocr

import (
	"context"
	"errors"

	"ocr-backend/internal/translate"
	"ocr-backend/internal/vision"
)

var (
	// ErrNoAPIKey means neither the request nor the server supplied a key.
	ErrNoAPIKey = errors.New("API key is required")
)

// Options selects pipeline behavior for a single run. The two historical
// pipelines (plain OCR plus separate translation, and Markdown-first with
// embedded images) are flags on one code path.
type Options struct {
	// APIKey supplied per request; empty falls back to the server key.
	APIKey string
	// Markdown selects the Markdown-first prompt over plain extraction.
	Markdown bool
	// Translate runs the extracted text through the translation service.
	Translate bool
	// EmbedImages holds base64 data URLs to append as image references.
	EmbedImages []string
}

// Result carries the extraction output and, when requested, its translation.
type Result struct {
	Text       string
	Translated string
}

// Service is the single OCR pipeline. All provider access goes through an
// injected client factory, so tests substitute fakes and no global client
// state exists.
type Service struct {
	Clients    vision.Factory
	Translator translate.Translator
	Images     *ImageSink

	ServerKey  string
	SourceLang string
	TargetLang string
}

// Run validates the image, extracts its content, then applies the optional
// translate and embed-images stages.
func (s *Service) Run(ctx context.Context, img vision.UploadedImage, opts Options) (Result, error) {
	key := opts.APIKey
	if key == "" {
		key = s.ServerKey
	}
	if key == "" {
		return Result{}, ErrNoAPIKey
	}

	client := s.Clients(key)

	var (
		text string
		err  error
	)
	if opts.Markdown {
		text, err = client.ExtractMarkdown(ctx, img)
	} else {
		text, err = client.ExtractText(ctx, img)
	}
	if err != nil {
		return Result{}, err
	}

	res := Result{Text: text}

	if opts.Translate {
		source := s.SourceLang
		if source == "" {
			source = "en"
		}
		translated, err := s.Translator.Translate(ctx, text, source, s.TargetLang)
		if err != nil {
			return Result{}, err
		}
		res.Translated = translated
	}

	if len(opts.EmbedImages) > 0 && s.Images != nil {
		res.Text = s.Images.CombineMarkdownWithImages(res.Text, opts.EmbedImages)
	}

	return res, nil
}
