package assets

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"ocr-backend/internal/shared/telemetry"
)

const (
	fontURL  = "https://github.com/dejavu-fonts/dejavu-fonts/raw/master/ttf/DejaVuSans.ttf"
	fontName = "DejaVuSans.ttf"

	downloadTimeout = 30 * time.Second
)

// FontPath returns where the PDF font lives inside the assets directory.
func FontPath(assetsDir string) string {
	return filepath.Join(assetsDir, fontName)
}

// EnsureFont downloads DejaVuSans.ttf into assetsDir if it is not already
// there. Failure is reported but tolerable: PDF output falls back to the
// built-in core font and loses non-ASCII glyphs.
func EnsureFont(assetsDir string) (string, error) {
	path := FontPath(assetsDir)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(assetsDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir assets: %w", err)
	}

	telemetry.Info("assets.font.download", map[string]any{"url": fontURL})

	client := &http.Client{Timeout: downloadTimeout}
	resp, err := client.Get(fontURL)
	if err != nil {
		return "", fmt.Errorf("download font: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download font: status %d", resp.StatusCode)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("write font: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write font: %w", err)
	}
	return path, nil
}
