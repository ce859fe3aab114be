package vision

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// UploadedImage is a request-scoped image payload plus its declared extension.
type UploadedImage struct {
	Data []byte
	Ext  string // normalized, without the dot: png, jpg, jpeg
}

// Client abstracts the multimodal OCR/translation provider.
type Client interface {
	// ExtractText returns the plain text content of the image.
	ExtractText(ctx context.Context, img UploadedImage) (string, error)
	// ExtractMarkdown returns the image content as Markdown, with tables,
	// dollar-delimited math and prose translated to the configured language.
	ExtractMarkdown(ctx context.Context, img UploadedImage) (string, error)
}

// Factory builds a Client for a given provider API key. The server-configured
// deployment calls it once at bootstrap; /api/ocr/process calls it per request
// with the key supplied in the form.
type Factory func(apiKey string) Client

// Typed provider errors. Classification happens once, inside the client
// wrapper; handlers map these to HTTP statuses with errors.Is.
var (
	ErrInvalidKey    = errors.New("invalid provider API key")
	ErrQuotaExceeded = errors.New("provider quota exceeded")
	ErrEmptyResult   = errors.New("could not extract text from image")
)

var allowedExts = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
}

// NormalizeExt lowercases ext and strips a leading dot.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// AllowedExt reports whether the extension is on the upload allow-list.
func AllowedExt(ext string) bool {
	_, ok := allowedExts[NormalizeExt(ext)]
	return ok
}

// MIMEForExt maps an allow-listed extension to its MIME type.
func MIMEForExt(ext string) string {
	switch NormalizeExt(ext) {
	case "jpg", "jpeg":
		return "image/jpeg"
	default:
		return "image/png"
	}
}

// ClassifyProviderError wraps raw provider errors into the typed taxonomy by
// inspecting the provider's error text. Sentinels are attached with %w so
// callers can use errors.Is without re-parsing message text.
func ClassifyProviderError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToUpper(err.Error())
	switch {
	case strings.Contains(msg, "API_KEY") || strings.Contains(msg, "API KEY NOT VALID"):
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	case strings.Contains(msg, "QUOTA") || strings.Contains(msg, "LIMIT") || strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	default:
		return err
	}
}
