package met

import (
	"context"
	"errors"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/mmcdole/dailyart/internal/domain"
)

const breakerName = "met-collection-api"

// newBreaker builds the circuit breaker guarding the collection API.
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window
//   - 30 second cool-down before probing again
//   - Opens after a 60% failure rate with at least 10 requests
func newBreaker(logger *slog.Logger) *gobreaker.CircuitBreaker[[]byte] {
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			if failureRatio >= 0.6 {
				logger.Warn("opening circuit",
					"breaker", breakerName,
					"failures", counts.TotalFailures,
					"failureRate", failureRatio*100,
				)
				return true
			}
			return false
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit state change", "breaker", name, "from", from.String(), "to", to.String())
		},

		// Missing records and caller cancellation say nothing about API health
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, domain.ErrNotFound) ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, context.DeadlineExceeded)
		},
	})
}
