package exports

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ocr-backend/internal/shared/server/respond"
)

// Handler wires the export and download endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the export routes at the engine root; the paths are
// part of the front-end contract.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/to_docx", h.exportAs("docx"))
	r.POST("/to_pdf", h.exportAs("pdf"))
	// Wildcard instead of a named param so traversal attempts reach the
	// handler and get a 400 rather than falling through to a 404.
	r.GET("/download/*filename", h.download)
}

type exportRequest struct {
	Markdown string `json:"markdown"`
}

type exportResponse struct {
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
}

func (h *Handler) exportAs(format string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req exportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "invalid request body")
			return
		}

		doc, err := h.Svc.Export(c.Request.Context(), req.Markdown, format)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyMarkdown):
				respond.Error(c, http.StatusBadRequest, "markdown content is required")
			default:
				respond.Error(c, http.StatusInternalServerError, err.Error())
			}
			return
		}

		c.Set("documentFile", doc.Filename)
		respond.JSON(c, http.StatusOK, exportResponse{
			Filename:    doc.Filename,
			DownloadURL: "/download/" + doc.Filename,
		})
	}
}

func (h *Handler) download(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filename"), "/")

	path, err := h.Svc.Store.Path(name)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "file not found")
		default:
			respond.Error(c, http.StatusBadRequest, "invalid filename")
		}
		return
	}

	c.FileAttachment(path, name)
}
