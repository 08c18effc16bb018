package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jain881/AIFolio/api/http/presenter"
	"github.com/jain881/AIFolio/pkg/cv"
	"github.com/jain881/AIFolio/pkg/portfolio"
)

type PortfolioHandler struct {
	pub     *portfolio.Publisher
	tracker *portfolio.Tracker
}

func NewPortfolioHandler(pub *portfolio.Publisher, tracker *portfolio.Tracker) *PortfolioHandler {
	return &PortfolioHandler{pub: pub, tracker: tracker}
}

type publishRequest struct {
	// CV arrives loosely typed and is normalized at this boundary, so a
	// client may replay the record exactly as the extract endpoint returned
	// it or hand-edit it first.
	CV    map[string]any `json:"cv"`
	Theme string         `json:"theme"`
}

// Publish materializes a portfolio site for the given CV record.
// @Summary Publish a portfolio site for a CV record
// @Description Idempotent per contact email: repeated publishes for the same owner return the existing artifact.
// @Tags    portfolio
// @Accept  json
// @Produce json
// @Param   request body publishRequest true "CV record and theme selector"
// @Success 200 {object} portfolio.PublishResult
// @Failure 400 {object} presenter.ErrorResponse "Missing identity (contact email)"
// @Failure 500 {object} presenter.ErrorResponse "Publish failed"
// @Router  /portfolio/publish [post]
func (h *PortfolioHandler) Publish(c *fiber.Ctx) error {
	var req publishRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request body")
	}
	rec := cv.Normalize(req.CV)

	result, err := h.pub.Publish(c.Context(), rec, req.Theme)
	if err != nil {
		if errors.Is(err, portfolio.ErrMissingIdentity) {
			return presenter.Error(c, http.StatusBadRequest, "contact email is required to publish")
		}
		log.Printf("publish: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to publish portfolio")
	}
	return presenter.JSON(c, http.StatusOK, result)
}

// Views returns the access counters of one published artifact.
// @Summary View counters for a published portfolio
// @Tags    portfolio
// @Produce json
// @Param   id path string true "Artifact id"
// @Success 200 {object} portfolio.Counter
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /portfolio/{id}/views [get]
func (h *PortfolioHandler) Views(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := h.pub.Resolve(id); !ok {
		return presenter.Error(c, http.StatusNotFound, "portfolio not found")
	}
	views, err := h.tracker.Views(c.Context(), id)
	if err != nil {
		if errors.Is(err, portfolio.ErrUnknownArtifact) {
			// Published but never opened.
			return presenter.JSON(c, http.StatusOK, portfolio.Counter{ViewHistory: []portfolio.ViewEvent{}})
		}
		log.Printf("views %s: %v", id, err)
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
	return presenter.JSON(c, http.StatusOK, views)
}
