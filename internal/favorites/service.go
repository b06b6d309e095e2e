// Package favorites manages the user's ordered, deduplicated favorites
package favorites

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/dailyart/internal/domain"
)

// Service orchestrates favorites persistence. Every mutation rewrites the
// whole collection to the store.
type Service struct {
	store  domain.Store
	logger *slog.Logger

	mu sync.Mutex
}

// NewService creates a new favorites service.
func NewService(store domain.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// load returns the persisted favorites; absent or malformed reads as empty
func (s *Service) load() []domain.Artwork {
	favs, ok := s.store.GetFavorites()
	if !ok {
		return []domain.Artwork{}
	}
	return favs
}

func indexOf(favs []domain.Artwork, id string) int {
	for i, f := range favs {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// List returns favorites in insertion order
func (s *Service) List() []domain.Artwork {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// IsFavorite reports whether an artwork id is a favorite
func (s *Service) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.load(), id) >= 0
}

// Add appends an artwork unless its id is already a favorite
func (s *Service) Add(artwork domain.Artwork) ([]domain.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favs := s.load()
	if indexOf(favs, artwork.ID) >= 0 {
		return favs, nil
	}
	favs = append(favs, artwork)
	if err := s.store.SaveFavorites(favs); err != nil {
		s.logger.Error("failed to save favorites", "error", err, "id", artwork.ID)
		return nil, err
	}
	s.logger.Info("added favorite", "id", artwork.ID, "count", len(favs))
	return favs, nil
}

// Remove drops an artwork by id; absent ids are a no-op
func (s *Service) Remove(id string) ([]domain.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favs := s.load()
	i := indexOf(favs, id)
	if i < 0 {
		return favs, nil
	}
	favs = append(favs[:i], favs[i+1:]...)
	if err := s.store.SaveFavorites(favs); err != nil {
		s.logger.Error("failed to save favorites", "error", err, "id", id)
		return nil, err
	}
	s.logger.Info("removed favorite", "id", id, "count", len(favs))
	return favs, nil
}

// Toggle adds the artwork when absent and removes it when present.
// It reports whether the artwork is a favorite afterwards.
func (s *Service) Toggle(artwork domain.Artwork) (bool, error) {
	if s.IsFavorite(artwork.ID) {
		_, err := s.Remove(artwork.ID)
		return false, err
	}
	_, err := s.Add(artwork)
	return err == nil, err
}

// Search filters favorites by a fuzzy match on title or artist.
// An empty query returns every favorite.
func (s *Service) Search(query string) []domain.Artwork {
	favs := s.List()
	query = strings.TrimSpace(query)
	if query == "" {
		return favs
	}

	var results []domain.Artwork
	for _, f := range favs {
		if fuzzy.MatchNormalizedFold(query, f.Title) || fuzzy.MatchNormalizedFold(query, f.Artist) {
			results = append(results, f)
		}
	}
	return results
}
