package config

import (
	"context"
	"fmt"
	"os"

	"workhours/internal/repository"
	"workhours/internal/repository/postgres"
	"workhours/internal/repository/sqlite"
)

// Options returns the repository timeouts from the configuration
func (c *Config) Options() repository.Options {
	return repository.Options{
		QueryTimeout: c.Storage.QueryTimeout,
		WriteTimeout: c.Storage.WriteTimeout,
	}
}

// CreateRepository creates a repository for the configured backend.
// The testing environment always gets an in-memory database and the development
// environment keeps its SQLite file in the working directory.
func CreateRepository(ctx context.Context, config *Config) (repository.Repository, error) {
	switch config.Application.Environment {
	case EnvTesting:
		return CreateTestRepository()
	case EnvDevelopment:
		if config.Storage.Backend == BackendSQLite {
			repo, err := sqlite.NewWithOptions(config.Storage.Filename, config.Options())
			if err != nil {
				return nil, fmt.Errorf("failed to initialize development database: %w", err)
			}
			return repo, nil
		}
	}

	switch config.Storage.Backend {
	case BackendPostgres:
		repo, err := postgres.New(ctx, config.Storage.PostgresDSN, config.Options())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return repo, nil
	default:
		if err := os.MkdirAll(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		repo, err := sqlite.NewWithOptions(config.GetDatabasePath(), config.Options())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	}
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (repository.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return repo, nil
}
