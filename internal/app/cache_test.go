package app

import (
	"context"
	"testing"

	"vitrine-backend/internal/cache"
	"vitrine-backend/internal/config"
	"vitrine-backend/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCacheWithoutRedis(t *testing.T) {
	c, closeCache, err := OpenCache(context.Background(), &config.Config{Env: "test"}, logging.Discard())
	require.NoError(t, err)
	assert.IsType(t, &cache.NoopCache{}, c)
	assert.NoError(t, closeCache())
}
