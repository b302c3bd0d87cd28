package main

import (
	"context"

	"employeetracker/internal/config"
	"employeetracker/internal/store"
	"employeetracker/internal/store/postgres"
	"employeetracker/internal/store/sqlite"
)

func openDB(ctx context.Context, cfg *config.ProjectConfig) (store.Store, error) {
	driver, err := config.Driver(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		return sqlite.New(ctx, cfg.Database.DSN)
	}
	return postgres.New(ctx, cfg.Database.DSN)
}
