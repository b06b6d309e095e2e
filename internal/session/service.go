package session

import (
	"log/slog"

	"github.com/mmcdole/dailyart/internal/domain"
)

// Service manages user session operations
type Service struct {
	store  domain.Store
	pool   *Pool
	logger *slog.Logger
}

// NewService creates a new session service
func NewService(store domain.Store, pool *Pool, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if pool == nil {
		pool = NewPool()
	}
	return &Service{store: store, pool: pool, logger: logger}
}

// Pool returns the seen-artwork pool
func (s *Service) Pool() *Pool {
	return s.pool
}

// Reset clears the daily entry, favorites and preferences, and empties the pool
func (s *Service) Reset() {
	s.store.InvalidateAll()
	s.pool.Reset()
	s.logger.Info("session reset")
}
