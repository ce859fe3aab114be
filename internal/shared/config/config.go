package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string

	// Gemini provider. GeminiAPIKey is the server-side deployment variant;
	// /api/ocr/process accepts a per-request key instead.
	GeminiAPIKey  string
	GeminiModel   string
	TargetLang    string
	VisionTimeout time.Duration

	// Converter engine selection: auto, pandoc or native.
	ConvertEngine string

	OutputDir string
	ImagesDir string
	AssetsDir string
	WebDir    string

	// FontDownload gates the first-run DejaVuSans fetch for PDF rendering.
	FontDownload bool

	// Retention policy for generated files. TTL of zero disables cleanup.
	OutputTTL     time.Duration
	SweepInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	outputDir := getEnv("OUTPUT_DIR", "./outputs")

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		TargetLang:      getEnv("OCR_TARGET_LANG", "vi"),
		VisionTimeout:   getDuration("VISION_TIMEOUT_SECONDS", 120*time.Second),
		ConvertEngine:   normalizeEngine(getEnv("CONVERT_ENGINE", "auto")),
		OutputDir:       outputDir,
		ImagesDir:       getEnv("IMAGES_DIR", outputDir+"/images"),
		AssetsDir:       getEnv("ASSETS_DIR", "./assets"),
		WebDir:          getEnv("WEB_DIR", "./web"),
		FontDownload:    getEnv("FONT_DOWNLOAD", "1") != "0",
		OutputTTL:       getDuration("OUTPUT_TTL_SECONDS", 24*time.Hour),
		SweepInterval:   getDuration("OUTPUT_SWEEP_SECONDS", time.Hour),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs < 0 {
		return def
	}
	return time.Duration(secs) * time.Second
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeEngine(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pandoc":
		return "pandoc"
	case "native":
		return "native"
	default:
		return "auto"
	}
}
