package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lc-atelier/internal/core/logger"
	"lc-atelier/internal/features/customorders/domain"
	"lc-atelier/internal/features/customorders/ports"

	"go.uber.org/zap"
)

// ErrOrderNotFound is returned when the order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// ErrNotOrderOwner is returned when the provided phone does not match the order's customer.
var ErrNotOrderOwner = errors.New("phone does not match order record")

// ValidationError carries field-level messages for a draft that failed
// submission-time validation. Never persisted, always reported back.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("draft validation failed on %d field(s)", len(e.Fields))
}

// OrderService orchestrates the custom-order pipeline: atomic draft
// re-validation, price calculation, persistence, and best-effort side effects.
type OrderService struct {
	repo         ports.OrderRepository
	measurements ports.MeasurementSaver
	notifier     ports.OrderNotifier
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo ports.OrderRepository, measurements ports.MeasurementSaver, notifier ports.OrderNotifier) *OrderService {
	return &OrderService{
		repo:         repo,
		measurements: measurements,
		notifier:     notifier,
	}
}

// Submit re-validates the whole draft against one snapshot, prices it,
// persists the resulting order, and fires the confirmation side effects.
// Side-effect failures are logged and never fail the submission.
func (s *OrderService) Submit(ctx context.Context, draft *domain.CustomOrderDraft) (*domain.Order, error) {
	if result := domain.ValidateDraft(draft); !result.Valid {
		return nil, &ValidationError{Fields: result.Errors}
	}

	pricing := domain.CalculatePrice(draft)
	order := domain.NewOrder(draft, pricing)

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("service: failed to persist order: %w", err)
	}

	if draft.SaveMeasurements {
		if err := s.measurements.SaveProfile(ctx, draft.CustomerInfo.Phone, draft.MeasurementLabel, draft.Measurements); err != nil {
			logger.Get().Error("Failed to save measurement profile",
				zap.String("order_number", order.Number),
				zap.Error(err),
			)
		}
	}

	s.notifier.NotifyOrderCreated(order.Summarize())

	return order, nil
}

// Get retrieves an order by number and verifies the caller owns it.
// The customer phone recorded on the order is the ownership credential.
func (s *OrderService) Get(ctx context.Context, number, phone string) (*domain.Order, error) {
	order, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch order: %w", err)
	}

	if order == nil {
		return nil, ErrOrderNotFound
	}

	if strings.TrimSpace(order.Draft.CustomerInfo.Phone) != strings.TrimSpace(phone) {
		return nil, ErrNotOrderOwner
	}

	return order, nil
}

// Quote prices a draft without validating or persisting anything. The
// wizard calls this after every pricing-relevant change.
func (s *OrderService) Quote(draft *domain.CustomOrderDraft) domain.PriceBreakdown {
	return domain.CalculatePrice(draft)
}

// ValidateStep checks a single wizard step for navigation.
func (s *OrderService) ValidateStep(draft *domain.CustomOrderDraft, step int) domain.StepResult {
	return domain.ValidateStep(draft, step)
}
