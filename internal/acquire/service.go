// Package acquire resolves the daily artwork and fresh artworks matching
// user constraints against the collection API, retrying across candidates
// and falling back to unconstrained draws before giving up.
package acquire

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/mmcdole/dailyart/internal/domain"
)

const (
	defaultSampleSize     = 20
	defaultMaxDraws       = 10
	defaultPrefetchWindow = 1

	// dateLayout is the calendar-date key of the daily slot
	dateLayout = "2006-01-02"
)

// Rand is the random source used for sampling and draws
type Rand interface {
	IntN(n int) int
}

// globalRand draws from the goroutine-safe top-level math/rand/v2 source
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Service orchestrates collection client + store operations for artwork acquisition.
type Service struct {
	client domain.CollectionClient
	store  domain.Store
	logger *slog.Logger

	rngMu sync.Mutex
	rng   Rand
	now   func() time.Time

	sampleSize int
	maxDraws   int
	window     int
}

// Option configures a Service.
type Option func(*Service)

// WithRand sets the random source. Access is serialized by the service.
func WithRand(r Rand) Option {
	return func(s *Service) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithClock sets the clock used to derive today's date
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSampleSize caps how many constrained candidates are evaluated
func WithSampleSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.sampleSize = n
		}
	}
}

// WithMaxDraws caps the random draws of the unconstrained fallback
func WithMaxDraws(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxDraws = n
		}
	}
}

// WithPrefetchWindow sets how many detail fetches may be in flight at once.
// Results are still evaluated in candidate order.
func WithPrefetchWindow(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.window = n
		}
	}
}

// NewService creates a new acquisition service.
func NewService(client domain.CollectionClient, store domain.Store, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		client:     client,
		store:      store,
		logger:     logger,
		rng:        globalRand{},
		now:        time.Now,
		sampleSize: defaultSampleSize,
		maxDraws:   defaultMaxDraws,
		window:     defaultPrefetchWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// today returns the current calendar date in the clock's location
func (s *Service) today() string {
	return s.now().Format(dateLayout)
}

func (s *Service) intN(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.IntN(n)
}

// sample draws up to n identifiers without replacement, in draw order
func (s *Service) sample(ids []string, n int) []string {
	if n > len(ids) {
		n = len(ids)
	}
	pool := make([]string, len(ids))
	copy(pool, ids)
	for i := 0; i < n; i++ {
		j := i + s.intN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// draw picks n identifiers uniformly with replacement
func (s *Service) draw(ids []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = ids[s.intN(len(ids))]
	}
	return out
}
