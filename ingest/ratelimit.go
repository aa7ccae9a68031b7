package ingest

import (
	"context"
	"sync"

	persona "github.com/kvrancic/persona-mcp"
	"golang.org/x/time/rate"
)

// Ensure DomainLimiter implements the interface.
var _ persona.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter enforces per-domain rate limits so scrape fan-out stays
// polite toward individual hosts.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a rate limiter that allows rps requests per
// second per domain.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until a request to the given domain is allowed, or the
// context is cancelled.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
