package acquire

import (
	"context"

	"github.com/mmcdole/dailyart/internal/domain"
)

// DailyArtwork returns today's artwork, fetching and caching a new one when
// the cached entry is from another day or has no image.
func (s *Service) DailyArtwork(ctx context.Context, constraints domain.Preferences) (*domain.Artwork, error) {
	date := s.today()
	entry, ok := s.store.GetDailyEntry()
	if ok && entry.IsValidFor(date) {
		s.logger.Debug("daily cache hit", "date", date, "id", entry.Artwork.ID)
		art := entry.Artwork
		return &art, nil
	}
	if ok && entry.Date == date {
		// Today's entry has no image and can never be served
		s.logger.Warn("dropping imageless daily entry", "date", date, "id", entry.Artwork.ID)
		s.store.InvalidateDaily()
	}

	s.logger.Debug("daily cache miss", "date", date)
	return s.fetchAndCache(ctx, date, constraints)
}

// Refresh always fetches a new artwork and replaces today's entry
func (s *Service) Refresh(ctx context.Context, constraints domain.Preferences) (*domain.Artwork, error) {
	return s.fetchAndCache(ctx, s.today(), constraints)
}

// Today returns the cached entry when it belongs to the current date
func (s *Service) Today() (domain.DailyEntry, bool) {
	entry, ok := s.store.GetDailyEntry()
	if !ok || !entry.IsValidFor(s.today()) {
		return domain.DailyEntry{}, false
	}
	return entry, true
}

func (s *Service) fetchAndCache(ctx context.Context, date string, constraints domain.Preferences) (*domain.Artwork, error) {
	art, err := s.FetchArtwork(ctx, constraints)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveDailyEntry(domain.DailyEntry{Date: date, Artwork: *art}); err != nil {
		s.logger.Error("failed to save daily entry", "error", err, "date", date)
	}
	s.logger.Info("new daily artwork", "date", date, "id", art.ID, "title", art.Title)
	return art, nil
}
