package config

import (
	"context"
	"fmt"
	"os"

	"todo/internal/repository/sqlite"
)

// CreateRepository opens the task store described by the configuration
func CreateRepository(ctx context.Context, config *Config) (sqlite.Repository, error) {
	dbPath := config.GetDatabasePath()

	repo, err := sqlite.Open(ctx, dbPath,
		sqlite.WithDirPermissions(os.FileMode(config.Database.DirPermissions)),
		sqlite.WithBusyTimeout(config.Database.BusyTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}
