package adapters

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lc-atelier/internal/features/customorders/domain"

	"github.com/jmoiron/sqlx"
)

// PostgresOrderRepository implements ports.OrderRepository on Postgres.
type PostgresOrderRepository struct {
	db *sqlx.DB
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository.
func NewPostgresOrderRepository(db *sqlx.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

type orderRow struct {
	ID            string    `db:"id"`
	Number        string    `db:"number"`
	Status        string    `db:"status"`
	CustomerPhone string    `db:"customer_phone"`
	Draft         []byte    `db:"draft"`
	Pricing       []byte    `db:"pricing"`
	CreatedAt     time.Time `db:"created_at"`
}

// Create persists the order and assigns its number in one transaction.
// The per-year counter row is bumped with an upsert, so the sequence is
// unique under concurrent submissions and the whole write is all-or-nothing.
func (r *PostgresOrderRepository) Create(ctx context.Context, order *domain.Order) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	year := order.CreatedAt.Year()

	var seq int
	const counterQuery = `
		INSERT INTO order_counters (year, last_seq)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET last_seq = order_counters.last_seq + 1
		RETURNING last_seq`
	if err = tx.QueryRowContext(ctx, counterQuery, year).Scan(&seq); err != nil {
		return fmt.Errorf("failed to advance order counter: %w", err)
	}

	order.Number = domain.FormatOrderNumber(year, seq)

	draftJSON, err := json.Marshal(order.Draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft snapshot: %w", err)
	}
	pricingJSON, err := json.Marshal(order.Pricing)
	if err != nil {
		return fmt.Errorf("failed to marshal price breakdown: %w", err)
	}

	const insertQuery = `
		INSERT INTO custom_orders (id, number, status, customer_phone, draft, pricing, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err = tx.ExecContext(ctx, insertQuery,
		order.ID,
		order.Number,
		string(order.Status),
		order.Draft.CustomerInfo.Phone,
		draftJSON,
		pricingJSON,
		order.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

// GetByNumber retrieves an order by its public number.
func (r *PostgresOrderRepository) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	const query = `
		SELECT id, number, status, customer_phone, draft, pricing, created_at
		FROM custom_orders
		WHERE number = $1`

	var row orderRow
	if err := r.db.GetContext(ctx, &row, query, number); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch order %s: %w", number, err)
	}

	order := &domain.Order{
		ID:        row.ID,
		Number:    row.Number,
		Status:    domain.OrderStatus(row.Status),
		CreatedAt: row.CreatedAt,
	}
	if err := json.Unmarshal(row.Draft, &order.Draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft snapshot: %w", err)
	}
	if err := json.Unmarshal(row.Pricing, &order.Pricing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal price breakdown: %w", err)
	}

	return order, nil
}
