package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jain881/AIFolio/api/http/presenter"
	"github.com/jain881/AIFolio/pkg/portfolio"
)

type ArtifactHandler struct {
	pub     *portfolio.Publisher
	tracker *portfolio.Tracker
}

func NewArtifactHandler(pub *portfolio.Publisher, tracker *portfolio.Tracker) *ArtifactHandler {
	return &ArtifactHandler{pub: pub, tracker: tracker}
}

// Serve resolves an artifact id and serves its static files. Sub-paths
// without a file extension ("soft routes") fall back to the entry page so
// single-page-application routing keeps working; those hits, and only those,
// are counted as views.
// @Summary Serve a published portfolio
// @Tags    portfolio
// @Param   id path string true "Artifact id"
// @Success 200 {file} file
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /p/{id} [get]
func (h *ArtifactHandler) Serve(c *fiber.Ctx) error {
	id := c.Params("id")
	dir, ok := h.pub.Resolve(id)
	if !ok {
		return presenter.Error(c, http.StatusNotFound, "portfolio not found")
	}

	sub := strings.TrimPrefix(c.Params("*"), "/")
	if strings.Contains(sub, "..") {
		return presenter.Error(c, http.StatusNotFound, "not found")
	}

	soft := sub == "" || filepath.Ext(sub) == ""
	target := filepath.Join(dir, filepath.FromSlash(sub))
	if soft {
		target = filepath.Join(dir, "index.html")
	} else if info, err := os.Stat(target); err != nil || info.IsDir() {
		return presenter.Error(c, http.StatusNotFound, "not found")
	}

	if soft {
		// Counting must never fail the serve.
		if err := h.tracker.RecordView(c.Context(), id, sourceAddress(c)); err != nil {
			log.Printf("record view %s: %v", id, err)
		}
	}
	return c.SendFile(target)
}

// sourceAddress extracts the best-effort client address: first hop of
// X-Forwarded-For when a proxy set it, else the connection's remote IP.
func sourceAddress(c *fiber.Ctx) string {
	if fwd := c.Get("X-Forwarded-For"); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "unknown"
}
