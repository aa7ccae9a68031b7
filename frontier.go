package persona

import "context"

// URLSet tracks candidate URLs that have already been accepted, so the
// same page is never scraped twice in one run.
type URLSet interface {
	// Add records the URL. Returns false if it was already present.
	Add(url string) bool

	// Contains returns true if the URL has been added.
	Contains(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
