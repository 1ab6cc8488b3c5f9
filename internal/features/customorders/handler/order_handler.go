package handler

import (
	"errors"
	"net/http"
	"strconv"

	"lc-atelier/internal/core/logger"
	"lc-atelier/internal/features/customorders/domain"
	"lc-atelier/internal/features/customorders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for the custom-order pipeline.
type OrderHandler struct {
	service *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(s *service.OrderService) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

// SubmitResponse is returned when an order is created.
type SubmitResponse struct {
	Success     bool   `json:"success"`
	OrderNumber string `json:"orderNumber"`
	OrderID     string `json:"orderId"`
}

// FailureResponse is returned when a submission is rejected.
// Errors carries field-level messages keyed by dotted field path;
// Message is used when no field can be blamed.
type FailureResponse struct {
	Success bool              `json:"success"`
	Errors  map[string]string `json:"errors,omitempty"`
	Message string            `json:"message,omitempty"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// Submit handles POST /custom-orders.
// @Summary Submit a custom order
// @Description Validates the whole draft, prices it, and creates the order.
// @Tags CustomOrders
// @Accept json
// @Produce json
// @Param draft body domain.CustomOrderDraft true "Custom order draft"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} FailureResponse
// @Failure 500 {object} FailureResponse
// @Router /custom-orders [post]
func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	var draft domain.CustomOrderDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(http.StatusBadRequest).JSON(FailureResponse{
			Message: "Invalid request body",
		})
	}

	// Max-count rule lives at the binding layer; the step validator only
	// enforces the minimum.
	if len(draft.ReferenceImages) > domain.MaxReferenceImages {
		return c.Status(http.StatusBadRequest).JSON(FailureResponse{
			Errors: map[string]string{
				"referenceImages": "You can upload at most 6 reference images",
			},
		})
	}

	order, err := h.service.Submit(c.Context(), &draft)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.Status(http.StatusBadRequest).JSON(FailureResponse{
				Errors: verr.Fields,
			})
		}

		logger.Get().Error("Failed to create order",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		// Persistence failures stay generic; no internal detail leaks.
		return c.Status(http.StatusInternalServerError).JSON(FailureResponse{
			Message: "Internal Server Error",
		})
	}

	return c.Status(http.StatusCreated).JSON(SubmitResponse{
		Success:     true,
		OrderNumber: order.Number,
		OrderID:     order.ID,
	})
}

// Get handles GET /custom-orders/:number.
// @Summary Get a custom order
// @Description Fetch an order by its number. The customer phone must match the order record.
// @Tags CustomOrders
// @Produce json
// @Param number path string true "Order number (LC-YYYY-NNNN)"
// @Param phone query string true "Customer phone"
// @Success 200 {object} domain.Order
// @Failure 400 {object} FailureResponse
// @Failure 403 {object} FailureResponse
// @Failure 404 {object} FailureResponse
// @Router /custom-orders/{number} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	number := c.Params("number")
	phone := c.Query("phone")

	if phone == "" {
		return c.Status(http.StatusBadRequest).JSON(FailureResponse{
			Message: "phone query parameter is required",
		})
	}

	order, err := h.service.Get(c.Context(), number, phone)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return c.Status(http.StatusNotFound).JSON(FailureResponse{
				Message: "Order not found",
			})
		case errors.Is(err, service.ErrNotOrderOwner):
			return c.Status(http.StatusForbidden).JSON(FailureResponse{
				Message: "You are not allowed to view this order",
			})
		}

		logger.Get().Error("Failed to fetch order",
			zap.String("order_number", number),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(FailureResponse{
			Message: "Internal Server Error",
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}

// Quote handles POST /custom-orders/quote.
// @Summary Price a draft
// @Description Computes the price breakdown for a draft without persisting anything.
// @Tags CustomOrders
// @Accept json
// @Produce json
// @Param draft body domain.CustomOrderDraft true "Custom order draft"
// @Success 200 {object} domain.PriceBreakdown
// @Failure 400 {object} FailureResponse
// @Router /custom-orders/quote [post]
func (h *OrderHandler) Quote(c *fiber.Ctx) error {
	var draft domain.CustomOrderDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(http.StatusBadRequest).JSON(FailureResponse{
			Message: "Invalid request body",
		})
	}

	return c.Status(http.StatusOK).JSON(h.service.Quote(&draft))
}

// ValidateStep handles POST /custom-orders/validate/:step.
// @Summary Validate a wizard step
// @Description Runs a single step validator for wizard navigation.
// @Tags CustomOrders
// @Accept json
// @Produce json
// @Param step path int true "Step number (1-5)"
// @Param draft body domain.CustomOrderDraft true "Custom order draft"
// @Success 200 {object} domain.StepResult
// @Failure 400 {object} FailureResponse
// @Router /custom-orders/validate/{step} [post]
func (h *OrderHandler) ValidateStep(c *fiber.Ctx) error {
	step, err := strconv.Atoi(c.Params("step"))
	if err != nil || step < domain.StepServiceType || step > domain.StepReview {
		return c.Status(http.StatusBadRequest).JSON(FailureResponse{
			Message: "step must be a number between 1 and 5",
		})
	}

	var draft domain.CustomOrderDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(http.StatusBadRequest).JSON(FailureResponse{
			Message: "Invalid request body",
		})
	}

	return c.Status(http.StatusOK).JSON(h.service.ValidateStep(&draft, step))
}
