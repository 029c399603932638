package usecase

import "context"

// ContextInvalidator drops derived caches built from store data; the
// assistant's team snapshot satisfies it. Mutating usecases call it after
// every successful write so cached context never outlives a change.
type ContextInvalidator interface {
	Invalidate(ctx context.Context) error
}

// A failed invalidation only means the cache ages out on its TTL instead,
// so the error is deliberately dropped.
func invalidateContext(ctx context.Context, inv ContextInvalidator) {
	if inv == nil {
		return
	}
	_ = inv.Invalidate(ctx)
}
