package ocr

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"ocr-backend/internal/convert"
	"ocr-backend/internal/shared/server/respond"
	"ocr-backend/internal/vision"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires the OCR endpoints to the pipeline service.
type Handler struct {
	Svc  *Service
	Conv convert.Converter
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, conv convert.Converter) *Handler {
	return &Handler{Svc: svc, Conv: conv}
}

// RegisterRoutes attaches all OCR routes. The paths mirror the front-end
// contract, so both pipeline variants keep their historical URLs.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/ocr", h.markdownOCR)
	r.POST("/api/ocr", h.plainOCR)
	r.POST("/api/ocr/process", h.process)
	r.POST("/api/ocr/download/:file_type", h.downloadProcessed)
}

// plainOCR accepts a multipart file and returns {text}.
func (h *Handler) plainOCR(c *gin.Context) {
	img, ok := h.imageFromForm(c, "file")
	if !ok {
		return
	}

	c.Set("ocrPipeline", "plain")
	res, err := h.Svc.Run(c.Request.Context(), img, Options{})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.OK(c, gin.H{"text": res.Text})
}

type markdownOCRRequest struct {
	DataURL string   `json:"dataURL"`
	Images  []string `json:"images"`
}

// markdownOCR accepts either a multipart file or a JSON data URL and returns
// {markdown}, with any supplied images embedded at the end.
func (h *Handler) markdownOCR(c *gin.Context) {
	var (
		img         vision.UploadedImage
		embedImages []string
	)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		var ok bool
		if img, ok = h.imageFromForm(c, "file"); !ok {
			return
		}
	} else {
		var req markdownOCRRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "invalid request body")
			return
		}
		data, ext, err := decodeDataURL(req.DataURL)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "no image provided")
			return
		}
		img = vision.UploadedImage{Data: data, Ext: ext}
		embedImages = req.Images
	}

	c.Set("ocrPipeline", "markdown")
	res, err := h.Svc.Run(c.Request.Context(), img, Options{
		Markdown:    true,
		EmbedImages: embedImages,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.OK(c, gin.H{"markdown": res.Text})
}

// process is the combined pipeline: per-request API key, OCR, then a separate
// translation pass. The typed provider errors map onto 401/429 here.
func (h *Handler) process(c *gin.Context) {
	apiKey := strings.TrimSpace(c.PostForm("api_key"))
	if apiKey == "" {
		respond.Error(c, http.StatusBadRequest, "API key is required")
		return
	}

	img, ok := h.imageFromForm(c, "image")
	if !ok {
		return
	}

	c.Set("ocrPipeline", "process")
	res, err := h.Svc.Run(c.Request.Context(), img, Options{
		APIKey:    apiKey,
		Translate: true,
	})
	if err != nil {
		switch {
		case errors.Is(err, vision.ErrEmptyResult):
			respond.Error(c, http.StatusBadRequest, "Could not extract text from image")
		case errors.Is(err, vision.ErrInvalidKey):
			respond.Error(c, http.StatusUnauthorized, "Invalid API key")
		case errors.Is(err, vision.ErrQuotaExceeded):
			respond.Error(c, http.StatusTooManyRequests, "API quota exceeded")
		default:
			respond.Error(c, http.StatusInternalServerError, "Processing error: "+err.Error())
		}
		return
	}

	respond.OK(c, gin.H{
		"success":           true,
		"original_text":     res.Text,
		"translated_text":   res.Translated,
		"original_length":   len([]rune(res.Text)),
		"translated_length": len([]rune(res.Translated)),
	})
}

type downloadRequest struct {
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
}

// downloadProcessed generates a DOCX or PDF from previously processed text
// and streams it back as an attachment.
func (h *Handler) downloadProcessed(c *gin.Context) {
	fileType := c.Param("file_type")
	if fileType != "docx" && fileType != "pdf" {
		respond.Error(c, http.StatusBadRequest, "Invalid file type")
		return
	}

	var req downloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.OriginalText) == "" || strings.TrimSpace(req.TranslatedText) == "" {
		respond.Error(c, http.StatusBadRequest, "Text data is required")
		return
	}

	var (
		data []byte
		err  error
		mime string
	)
	switch fileType {
	case "docx":
		data, err = h.Conv.ToDocx(c.Request.Context(), req.TranslatedText)
		mime = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "pdf":
		data, err = h.Conv.ToPdf(c.Request.Context(), req.TranslatedText)
		mime = "application/pdf"
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "File generation error: "+err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="ket_qua_ocr_dich.`+fileType+`"`)
	c.Data(http.StatusOK, mime, data)
}

// imageFromForm reads and validates a multipart image upload. On failure it
// writes the error response and returns ok=false.
func (h *Handler) imageFromForm(c *gin.Context, field string) (vision.UploadedImage, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile(field)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "No file uploaded")
		return vision.UploadedImage{}, false
	}
	if strings.TrimSpace(fileHeader.Filename) == "" {
		respond.Error(c, http.StatusBadRequest, "Empty filename")
		return vision.UploadedImage{}, false
	}

	ext := vision.NormalizeExt(filepath.Ext(fileHeader.Filename))
	if !vision.AllowedExt(ext) {
		respond.Error(c, http.StatusBadRequest, "Invalid file type. Only PNG, JPG, JPEG allowed")
		return vision.UploadedImage{}, false
	}

	data, err := readAll(fileHeader)
	if err != nil || len(data) == 0 {
		respond.Error(c, http.StatusBadRequest, "unable to read file")
		return vision.UploadedImage{}, false
	}

	return vision.UploadedImage{Data: data, Ext: ext}, true
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
