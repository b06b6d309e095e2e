package source

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/dailyart/internal/adapter"
	"github.com/mmcdole/dailyart/internal/adapter/source/met"
	"github.com/mmcdole/dailyart/internal/domain"
)

// SourceConfig contains the configuration needed to create a CollectionClient
type SourceConfig struct {
	Type          adapter.SourceType
	URL           string
	Timeout       time.Duration
	RatePerSecond float64
}

// NewClient creates a CollectionClient based on the source type.
func NewClient(cfg *SourceConfig, logger *slog.Logger) (domain.CollectionClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}

	if cfg.URL == "" {
		return nil, fmt.Errorf("source URL is required")
	}

	switch cfg.Type {
	case adapter.SourceTypeMet:
		return met.NewClient(cfg.URL, logger,
			met.WithTimeout(cfg.Timeout),
			met.WithRateLimit(cfg.RatePerSecond),
		), nil

	default:
		return nil, fmt.Errorf("unknown source type: %s", cfg.Type)
	}
}

// NewClientFromConfig creates a CollectionClient from the application config
func NewClientFromConfig(cfg *adapter.Config, logger *slog.Logger) (domain.CollectionClient, error) {
	return NewClient(&SourceConfig{
		Type:          cfg.Source.Type,
		URL:           cfg.Source.URL,
		Timeout:       cfg.Source.Timeout,
		RatePerSecond: cfg.Source.RatePerSecond,
	}, logger)
}
