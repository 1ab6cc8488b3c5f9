package database

import (
	"context"
	"fmt"
	"time"

	"lc-atelier/internal/core/config"
	"lc-atelier/internal/core/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Connect opens a Postgres connection pool and verifies it is reachable.
func Connect(cfg config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Get().Info("Connected to Postgres")
	return db, nil
}
