package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pixelforge/pixelforge-api/pkg/metrics"
)

// Client wraps a pgx connection pool with observability. The pool itself is
// created by pkg/db so that TLS and sizing stay in one place.
type Client struct {
	pool *pgxpool.Pool
}

// NewClient creates a PostgreSQL client around an existing pool
func NewClient(pool *pgxpool.Pool) *Client {
	return &Client{pool: pool}
}

// Ping verifies database connectivity, used by the health check
func (c *Client) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

// recordMetrics records database operation metrics
func recordMetrics(operation, status string, duration float64) {
	metrics.DatabaseRequestDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.DatabaseRequestTotal.WithLabelValues(operation, status).Inc()
}
