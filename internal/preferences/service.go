// Package preferences persists the user's style, medium and period filters
package preferences

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mmcdole/dailyart/internal/domain"
)

// Service reads and writes the preferences slot
type Service struct {
	store  domain.Store
	logger *slog.Logger

	mu sync.Mutex
}

// NewService creates a new preferences service.
func NewService(store domain.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Get returns the stored preferences; absent or malformed reads as empty
func (s *Service) Get() domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefs, _ := s.store.GetPreferences()
	return prefs.Normalize()
}

// Set normalizes and persists preferences
func (s *Service) Set(p domain.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(p.Normalize())
}

// SetAxis replaces one axis and returns the stored result
func (s *Service) SetAxis(axis domain.Axis, tokens []string) (domain.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, _ := s.store.GetPreferences()
	next := current.WithAxis(axis, tokens).Normalize()
	if err := s.save(next); err != nil {
		return current.Normalize(), err
	}
	return next, nil
}

func (s *Service) save(p domain.Preferences) error {
	if err := s.store.SavePreferences(p); err != nil {
		s.logger.Error("failed to save preferences", "error", err)
		return fmt.Errorf("save preferences: %w", err)
	}
	s.logger.Info("saved preferences",
		"styles", len(p.Styles), "mediums", len(p.Mediums), "periods", len(p.Periods))
	return nil
}

// ParseTokens splits comma-separated user input into tokens
func ParseTokens(input string) []string {
	var tokens []string
	for _, part := range strings.Split(input, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// FormatTokens joins tokens for editing, the inverse of ParseTokens
func FormatTokens(tokens []string) string {
	return strings.Join(tokens, ", ")
}
