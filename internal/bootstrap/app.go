package bootstrap

import (
	"time"

	"github.com/gin-gonic/gin"

	"ocr-backend/internal/assets"
	"ocr-backend/internal/convert"
	"ocr-backend/internal/convert/native"
	"ocr-backend/internal/convert/pandoc"
	"ocr-backend/internal/exports"
	"ocr-backend/internal/ocr"
	"ocr-backend/internal/shared/config"
	"ocr-backend/internal/shared/server"
	"ocr-backend/internal/shared/telemetry"
	"ocr-backend/internal/translate"
	"ocr-backend/internal/translate/googlexlate"
	"ocr-backend/internal/vision"
	"ocr-backend/internal/vision/gemini"
)

// App holds shared dependencies built from config.
type App struct {
	Config config.Config
	Router *gin.Engine

	Converter convert.Converter
	Store     *exports.Store
	Images    *ocr.ImageSink
	Janitor   *exports.Janitor

	OCRService     *ocr.Service
	OCRHandler     *ocr.Handler
	ExportsService *exports.Service
	ExportsHandler *exports.Handler
}

// Deps lets tests substitute the external collaborators. Zero fields get the
// production defaults.
type Deps struct {
	Clients    vision.Factory
	Translator translate.Translator
	Converter  convert.Converter
}

// Build prepares the full application with production dependencies.
func Build(cfg config.Config) (*App, error) {
	return BuildWithDeps(cfg, Deps{})
}

// BuildWithDeps prepares the application, filling in any dependency the
// caller did not supply.
func BuildWithDeps(cfg config.Config, deps Deps) (*App, error) {
	store, err := exports.NewStore(cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	images, err := ocr.NewImageSink(cfg.ImagesDir)
	if err != nil {
		return nil, err
	}

	fontPath := assets.FontPath(cfg.AssetsDir)
	if cfg.FontDownload {
		if path, err := assets.EnsureFont(cfg.AssetsDir); err != nil {
			telemetry.Warn("assets.font.unavailable", map[string]any{"err": err.Error()})
		} else {
			fontPath = path
		}
	}

	converter := deps.Converter
	if converter == nil {
		converter = buildConverter(cfg, fontPath)
	}

	clients := deps.Clients
	if clients == nil {
		clients = gemini.Factory(cfg.GeminiModel, cfg.TargetLang, cfg.VisionTimeout)
	}

	translator := deps.Translator
	if translator == nil {
		translator = googlexlate.New(30 * time.Second)
	}

	ocrSvc := &ocr.Service{
		Clients:    clients,
		Translator: translator,
		Images:     images,
		ServerKey:  cfg.GeminiAPIKey,
		SourceLang: "en",
		TargetLang: cfg.TargetLang,
	}
	exportsSvc := &exports.Service{Converter: converter, Store: store}

	app := &App{
		Config:         cfg,
		Converter:      converter,
		Store:          store,
		Images:         images,
		Janitor:        exports.NewJanitor(cfg.OutputTTL, cfg.SweepInterval, cfg.OutputDir, cfg.ImagesDir),
		OCRService:     ocrSvc,
		OCRHandler:     ocr.NewHandler(ocrSvc, converter),
		ExportsService: exportsSvc,
		ExportsHandler: exports.NewHandler(exportsSvc),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		OCRHandler:     app.OCRHandler,
		ExportsHandler: app.ExportsHandler,
	})

	return app, nil
}

func buildConverter(cfg config.Config, fontPath string) convert.Converter {
	switch cfg.ConvertEngine {
	case "pandoc":
		return pandoc.New("pandoc")
	case "native":
		return native.New(fontPath)
	default:
		if pandoc.Available("pandoc") {
			return pandoc.New("pandoc")
		}
		return native.New(fontPath)
	}
}
