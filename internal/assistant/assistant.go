package assistant

import (
	"context"
	"time"
)

// Assistant is the prompt-in/text-out boundary to the external language
// model. Everything above it is testable with a deterministic stub.
type Assistant interface {
	SendMessage(ctx context.Context, prompt string) (string, error)
}

// Cache is the JSON cache the team snapshot sits in; satisfied by the redis
// and in-memory adapters.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
