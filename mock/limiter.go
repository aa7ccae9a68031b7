package mock

import (
	"context"

	persona "github.com/kvrancic/persona-mcp"
)

var _ persona.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of persona.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
