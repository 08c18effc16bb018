package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jain881/AIFolio/api/http/presenter"
	"github.com/jain881/AIFolio/pkg/cv"
)

type CVHandler struct {
	svc        *cv.Service
	modelName  string
	uploadsDir string
	// Limit uploaded file size read from the client (bytes)
	maxBytes int64
}

func NewCVHandler(svc *cv.Service, modelName, uploadsDir string) *CVHandler {
	return &CVHandler{svc: svc, modelName: modelName, uploadsDir: uploadsDir, maxBytes: 15 << 20} // 15MB
}

// Extract accepts an uploaded CV document, extracts its text and returns the
// normalized structured record together with the raw model completion.
// @Summary Extract structured CV data from an uploaded document
// @Description Accepts a PDF, DOCX or plain-text resume, extracts its text and asks the configured LLM for the canonical CV JSON.
// @Tags    cv
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Resume file (pdf, docx or txt)"
// @Success 200 {object} map[string]any "Normalized CV record plus raw model text"
// @Failure 400 {object} presenter.ErrorResponse "No file or unusable content"
// @Failure 500 {object} presenter.ErrorResponse "Model or JSON recovery failure"
// @Router  /cv/extract [post]
func (h *CVHandler) Extract(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "no file uploaded")
	}
	if fh.Size > h.maxBytes {
		return presenter.Error(c, http.StatusBadRequest, "file too large")
	}

	if err := os.MkdirAll(h.uploadsDir, 0o755); err != nil {
		log.Printf("prepare uploads dir: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
	// The original filename only declares the kind; the temp name is ours.
	tmp := filepath.Join(h.uploadsDir, uuid.New().String()+strings.ToLower(filepath.Ext(fh.Filename)))
	if err := c.SaveFile(fh, tmp); err != nil {
		log.Printf("save upload: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to store uploaded file")
	}
	// Unconditional: the temp file goes away on every path, success or not.
	defer os.Remove(tmp)

	result, err := h.svc.Process(c.Context(), fh.Filename, tmp)
	if err != nil {
		var rerr *cv.RecoveryError
		switch {
		case errors.Is(err, cv.ErrTextTooShort):
			return presenter.Error(c, http.StatusBadRequest, "could not extract usable text from file")
		case errors.As(err, &rerr):
			return presenter.ErrorWithRaw(c, http.StatusInternalServerError, rerr.Error(), rerr.Raw)
		case errors.Is(err, cv.ErrGateway):
			return presenter.Error(c, http.StatusInternalServerError, err.Error())
		default:
			log.Printf("cv extract: %v", err)
			return presenter.Error(c, http.StatusInternalServerError, "internal error")
		}
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"cv":        result.Record,
		"raw":       result.Raw,
		"model":     h.modelName,
		"filename":  fh.Filename,
		"charsUsed": result.CharsUsed,
		"truncated": result.Truncated,
	})
}
