package handler

import (
	"errors"
	"net/http"

	"lc-atelier/internal/core/logger"
	"lc-atelier/internal/features/fabrics/domain"
	"lc-atelier/internal/features/fabrics/ports"
	"lc-atelier/internal/features/fabrics/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FabricHandler handles HTTP requests for the fabric catalog.
type FabricHandler struct {
	service ports.FabricService
}

// NewFabricHandler creates a new FabricHandler.
func NewFabricHandler(service ports.FabricService) *FabricHandler {
	return &FabricHandler{
		service: service,
	}
}

// CreateFabricRequest is the request body for adding a catalog entry.
type CreateFabricRequest struct {
	Name  string `json:"name"`
	Price int    `json:"price"` // PKR per outfit
}

// Create handles POST /fabrics.
// @Summary Add a fabric
// @Description Adds a fabric to the in-house collection.
// @Tags Fabrics
// @Accept json
// @Produce json
// @Param fabric body CreateFabricRequest true "Fabric details"
// @Success 201 {object} domain.Fabric
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /fabrics [post]
func (h *FabricHandler) Create(c *fiber.Ctx) error {
	var req CreateFabricRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	fabric, err := h.service.AddFabric(c.Context(), req.Name, req.Price)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFabric) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Fabric needs a name and a positive price",
			})
		}
		logger.Get().Error("Failed to add fabric", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusCreated).JSON(fabric)
}

// Get handles GET /fabrics/:id.
// @Summary Get a fabric
// @Description Retrieves one catalog entry by id.
// @Tags Fabrics
// @Produce json
// @Param id path string true "Fabric ID"
// @Success 200 {object} domain.Fabric
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /fabrics/{id} [get]
func (h *FabricHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	fabric, err := h.service.GetFabric(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFabricNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Fabric not found",
			})
		}
		logger.Get().Error("Failed to get fabric", zap.String("id", id), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fabric)
}

// List handles GET /fabrics.
// @Summary List fabrics
// @Description Lists the active fabric collection for the wizard's picker.
// @Tags Fabrics
// @Produce json
// @Success 200 {array} domain.Fabric
// @Failure 500 {object} map[string]string
// @Router /fabrics [get]
func (h *FabricHandler) List(c *fiber.Ctx) error {
	fabrics, err := h.service.ListFabrics(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list fabrics", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if fabrics == nil {
		fabrics = []domain.Fabric{}
	}

	return c.Status(http.StatusOK).JSON(fabrics)
}
