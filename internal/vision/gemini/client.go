package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"ocr-backend/internal/vision"
)

// Client implements vision.Client against the Gemini generative API.
// A genai client is constructed per call and closed when done, so a Client
// holds no connection state and per-request API keys stay cheap.
type Client struct {
	apiKey     string
	model      string
	targetLang string
	timeout    time.Duration
}

// New constructs a Gemini client.
func New(apiKey, model, targetLang string, timeout time.Duration) *Client {
	if strings.TrimSpace(model) == "" {
		model = "gemini-2.0-flash"
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		apiKey:     strings.TrimSpace(apiKey),
		model:      strings.TrimSpace(model),
		targetLang: targetLang,
		timeout:    timeout,
	}
}

// Factory returns a vision.Factory that builds clients with this model,
// language and timeout but caller-supplied keys.
func Factory(model, targetLang string, timeout time.Duration) vision.Factory {
	return func(apiKey string) vision.Client {
		return New(apiKey, model, targetLang, timeout)
	}
}

// ExtractText runs the plain extraction prompt.
func (c *Client) ExtractText(ctx context.Context, img vision.UploadedImage) (string, error) {
	return c.generate(ctx, vision.TextPrompt, img)
}

// ExtractMarkdown runs the Markdown-first prompt.
func (c *Client) ExtractMarkdown(ctx context.Context, img vision.UploadedImage) (string, error) {
	return c.generate(ctx, vision.MarkdownPrompt(c.targetLang), img)
}

func (c *Client) generate(ctx context.Context, prompt string, img vision.UploadedImage) (string, error) {
	if c.apiKey == "" {
		return "", vision.ErrInvalidKey
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cl, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", vision.ClassifyProviderError(err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(c.model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(0),
	}

	parts := []genai.Part{
		genai.Text(prompt),
		genai.ImageData(imageFormat(img.Ext), img.Data),
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", vision.ClassifyProviderError(err)
	}

	txt := strings.TrimSpace(firstText(resp))
	if txt == "" {
		return "", vision.ErrEmptyResult
	}
	return txt, nil
}

func imageFormat(ext string) string {
	switch vision.NormalizeExt(ext) {
	case "jpg", "jpeg":
		return "jpeg"
	default:
		return "png"
	}
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, p := range cand.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }

var _ vision.Client = (*Client)(nil)
