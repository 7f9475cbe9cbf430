package translation

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

// BreakerProvider stops calling a failing provider for a cooldown period.
// While the breaker is open every call fails immediately; nothing is retried.
type BreakerProvider struct {
	next Provider
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps next in a circuit breaker that opens after the
// given number of consecutive failures.
func NewBreakerProvider(next Provider, failures uint32, cooldown time.Duration) *BreakerProvider {
	if failures == 0 {
		failures = 5
	}

	settings := gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("provider", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Translation circuit breaker changed state")
		},
	}

	return &BreakerProvider{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate forwards to the wrapped provider unless the breaker is open
func (b *BreakerProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Translate(ctx, text, source, target)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

// Name returns the wrapped provider name
func (b *BreakerProvider) Name() string {
	return fmt.Sprintf("%s (breaker)", b.next.Name())
}

// IsAvailable reports the wrapped provider's availability, or an error
// while the breaker is open
func (b *BreakerProvider) IsAvailable() error {
	if b.cb.State() == gobreaker.StateOpen {
		return gobreaker.ErrOpenState
	}
	return b.next.IsAvailable()
}
