package acquire

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mmcdole/dailyart/internal/domain"
	"github.com/mmcdole/dailyart/internal/match"
)

// state is a step of the fetch state machine
type state int

const (
	stateSampling    state = iota // list constrained ids and draw a sample
	stateEvaluating               // fetch sampled candidates in order
	stateFallingBack              // unconstrained random draws
	stateExhausted                // budget spent
)

func (s state) String() string {
	switch s {
	case stateSampling:
		return "sampling"
	case stateEvaluating:
		return "evaluating"
	case stateFallingBack:
		return "falling_back"
	case stateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// attempt carries one FetchArtwork run through the state machine
type attempt struct {
	constraints domain.Preferences
	state       state
	candidates  []string
	lastErr     error
}

func (a *attempt) record(err error) {
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		a.lastErr = err
	}
}

// ConstrainedFilter builds the upstream search for a set of constraints.
// The query text is the first medium token, else the first style token,
// else the first period token; mediums are pipe-joined.
func ConstrainedFilter(c domain.Preferences) domain.Filter {
	mediums := match.QueryTokens(c.Mediums)
	styles := match.QueryTokens(c.Styles)
	periods := match.QueryTokens(c.Periods)

	f := domain.Filter{HasImages: true}
	switch {
	case len(mediums) > 0:
		f.Query = mediums[0]
	case len(styles) > 0:
		f.Query = styles[0]
	case len(periods) > 0:
		f.Query = periods[0]
	}
	if f.Query == "" {
		f.Query = "*"
	}
	f.Medium = strings.Join(mediums, "|")
	return f
}

// FetchArtwork returns a fresh artwork with an image, preferring one that
// matches the constraints. Constrained candidates are sampled without
// replacement; when none qualifies, or the upstream fails, the search
// falls back to random draws over the whole collection.
func (s *Service) FetchArtwork(ctx context.Context, constraints domain.Preferences) (*domain.Artwork, error) {
	a := &attempt{constraints: constraints.Normalize(), state: stateSampling}
	if a.constraints.IsEmpty() {
		a.state = stateFallingBack
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.logger.Debug("fetch state", "state", a.state.String())

		switch a.state {
		case stateSampling:
			filter := ConstrainedFilter(a.constraints)
			ids, err := s.client.ObjectIDs(ctx, filter)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				s.logger.Warn("constrained search failed, falling back", "query", filter.Query, "error", err)
				a.record(err)
				a.state = stateFallingBack
				continue
			}
			a.candidates = s.sample(ids, s.sampleSize)
			s.logger.Debug("sampled candidates", "matches", len(ids), "sampled", len(a.candidates))
			a.state = stateEvaluating

		case stateEvaluating:
			accept := func(art *domain.Artwork) bool {
				return art.HasImage() && match.Constraints(*art, a.constraints)
			}
			art, err := s.firstAccepted(ctx, a.candidates, accept, true)
			if art != nil {
				return art, nil
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			a.record(err)
			s.logger.Info("no constrained candidate qualified, falling back",
				"sampled", len(a.candidates), "error", err)
			a.state = stateFallingBack

		case stateFallingBack:
			art, err := s.fallback(ctx, a)
			if art != nil {
				return art, nil
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			a.record(err)
			a.state = stateExhausted

		case stateExhausted:
			s.logger.Error("artwork unavailable", "error", a.lastErr)
			if a.lastErr != nil {
				return nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, a.lastErr)
			}
			return nil, domain.ErrUnavailable
		}
	}
}

// fallback lists the unfiltered collection and tries up to maxDraws random
// identifiers. Each failed or imageless draw consumes one draw.
func (s *Service) fallback(ctx context.Context, a *attempt) (*domain.Artwork, error) {
	ids, err := s.client.ObjectIDs(ctx, domain.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list collection: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	draws := s.draw(ids, s.maxDraws)
	hasImage := func(art *domain.Artwork) bool { return art.HasImage() }
	return s.firstAccepted(ctx, draws, hasImage, false)
}

type fetchResult struct {
	artwork *domain.Artwork
	err     error
}

// firstAccepted fetches details for ids and returns the first accepted
// artwork in id order. Not-found candidates are skipped. Other failures
// abort when abortOnError is set and are otherwise skipped; the last one
// is returned when nothing is accepted.
func (s *Service) firstAccepted(
	ctx context.Context,
	ids []string,
	accept func(*domain.Artwork) bool,
	abortOnError bool,
) (*domain.Artwork, error) {
	var lastErr error
	for start := 0; start < len(ids); start += s.window {
		end := min(start+s.window, len(ids))
		for i, r := range s.fetchWindow(ctx, ids[start:end]) {
			id := ids[start+i]
			switch {
			case r.err == nil:
				if r.artwork != nil && accept(r.artwork) {
					s.logger.Debug("accepted candidate", "id", id)
					return r.artwork, nil
				}
				s.logger.Debug("rejected candidate", "id", id)
			case errors.Is(r.err, domain.ErrNotFound):
				s.logger.Debug("candidate not found", "id", id)
			case ctx.Err() != nil:
				return nil, ctx.Err()
			default:
				if abortOnError {
					return nil, r.err
				}
				s.logger.Warn("candidate fetch failed", "id", id, "error", r.err)
				lastErr = r.err
			}
		}
	}
	return nil, lastErr
}

// fetchWindow fetches a window of candidates concurrently, results in input order
func (s *Service) fetchWindow(ctx context.Context, ids []string) []fetchResult {
	results := make([]fetchResult, len(ids))
	if len(ids) == 1 {
		art, err := s.client.Object(ctx, ids[0])
		results[0] = fetchResult{artwork: art, err: err}
		return results
	}

	var g errgroup.Group
	g.SetLimit(s.window)
	for i, id := range ids {
		g.Go(func() error {
			art, err := s.client.Object(ctx, id)
			results[i] = fetchResult{artwork: art, err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
