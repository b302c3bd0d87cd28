package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"employeetracker/internal/store"
)

var _ store.Store = (*Client)(nil)

type Client struct {
	pool      *pgxpool.Pool
	closeOnce sync.Once
}

func New(ctx context.Context, dsn string) (*Client, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return &Client{pool: pool}, nil
}

// Release closes the pool. Calls after the first are no-ops.
func (c *Client) Release(ctx context.Context) error {
	c.closeOnce.Do(c.pool.Close)
	return nil
}

func (c *Client) Seed(ctx context.Context) error {
	return store.SeedSampleData(ctx, c)
}
