package ports

import (
	"context"

	"lc-atelier/internal/features/customorders/domain"
)

// OrderRepository is the secondary port for order persistence.
type OrderRepository interface {
	// Create persists the order all-or-nothing and assigns its sequential
	// order number within the same transaction.
	Create(ctx context.Context, order *domain.Order) error

	// GetByNumber retrieves an order by its public number.
	// Returns (nil, nil) when no such order exists.
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
}

// MeasurementSaver persists a customer's measurements under a label.
// Invoked best-effort after order creation; failures must not surface.
type MeasurementSaver interface {
	SaveProfile(ctx context.Context, phone, label string, m domain.Measurements) error
}

// OrderNotifier queues best-effort order-confirmation messages.
// Implementations must never block the caller.
type OrderNotifier interface {
	NotifyOrderCreated(summary domain.Summary)
}
