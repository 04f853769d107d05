package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Remember returns the JSON encoding cached under key, or builds it with load
// and stores it for ttl. Cache failures are not fatal: the freshly loaded value
// is still returned. hit reports whether the payload came from the cache.
func Remember(ctx context.Context, c Cache, key string, ttl time.Duration, load func(ctx context.Context) (interface{}, error)) (payload []byte, hit bool, err error) {
	if c != nil {
		if cached, ok, err := c.Get(ctx, key); err == nil && ok {
			return cached, true, nil
		}
	}

	value, err := load(ctx)
	if err != nil {
		return nil, false, err
	}
	payload, err = json.Marshal(value)
	if err != nil {
		return nil, false, err
	}
	if c != nil {
		_ = c.Set(ctx, key, payload, ttl)
	}
	return payload, false, nil
}
