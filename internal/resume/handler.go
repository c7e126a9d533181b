package resume

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"careercompass-backend/internal/extract"
	"careercompass-backend/internal/shared/server/respond"
	"careercompass-backend/internal/shared/telemetry"
)

const maxUploadBytes = 5 << 20

// Handler exposes the upload-resume endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/upload-resume", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	file, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	var kind extract.Kind
	switch ext {
	case "pdf":
		kind = extract.KindPDF
	case "docx":
		kind = extract.KindDOCX
	default:
		respond.Error(c, http.StatusBadRequest, "Unsupported file type")
		return
	}

	if file.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "File too large")
		return
	}

	// The upload lives in a request-scoped temp file, removed on every
	// exit path.
	tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+"."+ext)
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			telemetry.Error("resume.upload.cleanup_failed", map[string]any{"path": tmpPath, "err": err.Error()})
		}
	}()

	record := h.svc.Parse(c.Request.Context(), tmpPath, kind)
	respond.OK(c, record)
}
