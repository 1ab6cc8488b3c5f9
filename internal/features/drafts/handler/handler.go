package handler

import (
	"errors"
	"net/http"

	"lc-atelier/internal/core/logger"
	"lc-atelier/internal/features/drafts/ports"
	"lc-atelier/internal/features/drafts/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DraftHandler handles HTTP requests for wizard draft persistence.
type DraftHandler struct {
	service ports.DraftService
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(service ports.DraftService) *DraftHandler {
	return &DraftHandler{
		service: service,
	}
}

// Save handles PUT /drafts/:key.
// @Summary Save a wizard draft
// @Description Stores the in-progress draft under a client-chosen key with a retention TTL.
// @Tags Drafts
// @Accept json
// @Produce json
// @Param key path string true "Draft key"
// @Param draft body object true "Draft payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /drafts/{key} [put]
func (h *DraftHandler) Save(c *fiber.Ctx) error {
	key := c.Params("key")
	body := c.Body()

	if len(body) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Draft payload is required",
		})
	}

	if err := h.service.Save(c.Context(), key, body); err != nil {
		if errors.Is(err, service.ErrInvalidDraftKey) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Draft key is required",
			})
		}
		logger.Get().Error("Failed to save draft", zap.String("key", key), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Draft saved",
	})
}

// Load handles GET /drafts/:key.
// @Summary Load a wizard draft
// @Description Retrieves the stored draft envelope. Expired or outdated drafts are discarded.
// @Tags Drafts
// @Produce json
// @Param key path string true "Draft key"
// @Success 200 {object} domain.Envelope
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /drafts/{key} [get]
func (h *DraftHandler) Load(c *fiber.Ctx) error {
	key := c.Params("key")

	envelope, err := h.service.Load(c.Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrDraftNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "No saved draft",
			})
		}
		logger.Get().Error("Failed to load draft", zap.String("key", key), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(envelope)
}

// Clear handles DELETE /drafts/:key.
// @Summary Clear a wizard draft
// @Description Removes the stored draft, releasing the key.
// @Tags Drafts
// @Produce json
// @Param key path string true "Draft key"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /drafts/{key} [delete]
func (h *DraftHandler) Clear(c *fiber.Ctx) error {
	key := c.Params("key")

	if err := h.service.Clear(c.Context(), key); err != nil {
		logger.Get().Error("Failed to clear draft", zap.String("key", key), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Draft cleared",
	})
}
