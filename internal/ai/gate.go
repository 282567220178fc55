package ai

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RequestInterval is the minimum spacing between the start of any two model
// calls. The free tier allows roughly 15 requests/minute; 4.5 s leaves
// headroom over the 4 s floor.
const RequestInterval = 4500 * time.Millisecond

// Gate paces outbound model calls process-wide. Every call site, scrape and
// chatbot alike, must pass through the same instance. It does not cap the
// total number of calls.
type Gate struct {
	limiter *rate.Limiter
}

// NewGate creates a gate that releases one call per interval, burst 1.
func NewGate(interval time.Duration) *Gate {
	return &Gate{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the next call is allowed or ctx is done.
func (g *Gate) Wait(ctx context.Context) error {
	return g.limiter.Wait(ctx)
}
