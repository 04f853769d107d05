package cache

import (
	"context"
	"time"
)

// Cache stores encoded response bodies. A miss is reported by ok=false with a
// nil error.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// NoopCache never holds anything. It is used when Redis is not configured.
type NoopCache struct{}

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (NoopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NoopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NoopCache) Delete(context.Context, string) error { return nil }

// Prefixed scopes every key of an underlying cache, so that several
// deployments can share one Redis database.
type Prefixed struct {
	next   Cache
	prefix string
}

func WithPrefix(next Cache, prefix string) *Prefixed {
	return &Prefixed{next: next, prefix: prefix}
}

func (p *Prefixed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return p.next.Get(ctx, p.prefix+key)
}

func (p *Prefixed) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return p.next.Set(ctx, p.prefix+key, value, ttl)
}

func (p *Prefixed) Delete(ctx context.Context, key string) error {
	return p.next.Delete(ctx, p.prefix+key)
}
