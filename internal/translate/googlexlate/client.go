package googlexlate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ocr-backend/internal/translate"
)

const defaultEndpoint = "https://translate.googleapis.com/translate_a/single"

// Client translates text through the public Google Translate endpoint.
// The service is a black box: one HTTP round-trip, no retries.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New constructs a translate client with the given timeout.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewWithEndpoint is used by tests to point at a fake server.
func NewWithEndpoint(endpoint string, timeout time.Duration) *Client {
	c := New(timeout)
	c.endpoint = endpoint
	return c
}

// Translate converts text from source to target language.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if source == "" {
		source = "auto"
	}
	if target == "" {
		target = "vi"
	}

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", source)
	q.Set("tl", target)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("translate read: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return parseResponse(body)
}

// parseResponse walks the endpoint's nested-array payload: the first element
// is a list of segments, each segment's first element is the translated text.
func parseResponse(body []byte) (string, error) {
	var outer []json.RawMessage
	if err := json.Unmarshal(body, &outer); err != nil {
		return "", fmt.Errorf("translate parse: %w", err)
	}
	if len(outer) == 0 {
		return "", fmt.Errorf("translate parse: empty payload")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(outer[0], &segments); err != nil {
		return "", fmt.Errorf("translate parse segments: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var piece string
		if err := json.Unmarshal(seg[0], &piece); err != nil {
			continue
		}
		sb.WriteString(piece)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("translate parse: no translated segments")
	}
	return sb.String(), nil
}

var _ translate.Translator = (*Client)(nil)
