package providers

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateGuard serialisiert alle ausgehenden Provider-Aufrufe prozessweit auf
// höchstens einen pro Intervall. Ein Limiter mit Burst 1 erzwingt genau den
// Mindestabstand; wartende Requests werden nacheinander eingelassen.
type RateGuard struct {
	limiter *rate.Limiter
}

// NewRateGuard erstellt einen Guard mit dem gegebenen Mindestabstand.
func NewRateGuard(minInterval time.Duration) *RateGuard {
	return &RateGuard{limiter: rate.NewLimiter(rate.Every(minInterval), 1)}
}

// Acquire blockiert, bis seit dem letzten Einlass mindestens das Intervall
// vergangen ist, oder bis der Context abgebrochen wird.
func (g *RateGuard) Acquire(ctx context.Context) error {
	return g.limiter.Wait(ctx)
}
