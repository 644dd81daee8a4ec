package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const defaultTimeout = 5 * time.Second

// Connect opens a sqlx handle on the lib/pq driver and verifies it with a ping.
func Connect(ctx context.Context, dsn string) (*sqlx.DB, error) {
	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(pingCtx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	return db, nil
}
