package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is the bootstrap DDL. Statements are idempotent so startup can
// run them unconditionally.
const schema = `
CREATE TABLE IF NOT EXISTS order_counters (
	year     INT PRIMARY KEY,
	last_seq INT NOT NULL
);

CREATE TABLE IF NOT EXISTS custom_orders (
	id             UUID PRIMARY KEY,
	number         TEXT NOT NULL UNIQUE,
	status         TEXT NOT NULL,
	customer_phone TEXT NOT NULL,
	draft          JSONB NOT NULL,
	pricing        JSONB NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_custom_orders_phone ON custom_orders (customer_phone);

CREATE TABLE IF NOT EXISTS measurement_profiles (
	id           UUID PRIMARY KEY,
	phone        TEXT NOT NULL,
	label        TEXT NOT NULL,
	measurements JSONB NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL,
	UNIQUE (phone, label)
);

CREATE TABLE IF NOT EXISTS fabrics (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	price      INT NOT NULL,
	active     BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL
);
`

// EnsureSchema creates the tables this service owns if they do not exist.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
