package store

import "context"

// Store executes parameterized statements against the employee schema.
type Store interface {
	Execute(ctx context.Context, statement string, params []any) (*Result, error)
	Release(ctx context.Context) error

	EnsureSchema(ctx context.Context) error
	Seed(ctx context.Context) error
}
