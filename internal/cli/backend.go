package cli

import (
	"context"
	"time"

	"workhours/internal/api"
	"workhours/internal/config"
	"workhours/internal/observability/metrics"
	"workhours/internal/services"
)

// Session is everything a command needs from the storage side
type Session struct {
	API     api.BusinessAPI
	Metrics *metrics.Metrics
	Close   func() error
}

// Connector opens a session for a loaded configuration
type Connector func(ctx context.Context, cfg *config.Config) (*Session, error)

// Connect opens the configured repository and wires the services over it
func Connect(ctx context.Context, cfg *config.Config) (*Session, error) {
	repo, err := config.CreateRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	container := services.NewServiceContainer(repo, m, time.Now)
	return &Session{
		API:     api.NewBusinessAPI(container, time.Now),
		Metrics: m,
		Close:   repo.Close,
	}, nil
}
