package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"lc-atelier/internal/core/logger"
	"lc-atelier/internal/features/measurements/domain"
	"lc-atelier/internal/features/measurements/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProfileHandler handles HTTP requests for measurement profiles.
type ProfileHandler struct {
	service ports.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		service: service,
	}
}

// SaveProfileRequest is the request body for saving a measurement profile.
type SaveProfileRequest struct {
	Phone        string          `json:"phone"`
	Label        string          `json:"label"`
	Measurements json.RawMessage `json:"measurements"`
}

// Save handles POST /measurement-profiles.
// @Summary Save a measurement profile
// @Description Creates or overwrites the measurement profile for (phone, label).
// @Tags Measurements
// @Accept json
// @Produce json
// @Param profile body SaveProfileRequest true "Profile details"
// @Success 201 {object} domain.Profile
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /measurement-profiles [post]
func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	var req SaveProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	profile, err := h.service.Save(c.Context(), req.Phone, req.Label, req.Measurements)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidProfile) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Phone and label are required",
			})
		}
		logger.Get().Error("Failed to save measurement profile", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusCreated).JSON(profile)
}

// List handles GET /measurement-profiles/:phone.
// @Summary List measurement profiles
// @Description Returns all measurement profiles saved for a customer phone.
// @Tags Measurements
// @Produce json
// @Param phone path string true "Customer phone"
// @Success 200 {array} domain.Profile
// @Failure 500 {object} map[string]string
// @Router /measurement-profiles/{phone} [get]
func (h *ProfileHandler) List(c *fiber.Ctx) error {
	phone := c.Params("phone")

	profiles, err := h.service.List(c.Context(), phone)
	if err != nil {
		logger.Get().Error("Failed to list measurement profiles",
			zap.String("phone", phone),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if profiles == nil {
		profiles = []domain.Profile{}
	}

	return c.Status(http.StatusOK).JSON(profiles)
}
