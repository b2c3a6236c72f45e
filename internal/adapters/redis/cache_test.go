package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisad "kennedia_site/internal/adapters/redis"
	"kennedia_site/internal/domain"
)

func newCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_SetGetDel(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()
	require.NoError(t, c.Ping(ctx))

	var got domain.City
	ok, err := c.Get(ctx, "city:goa", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "city:goa", domain.City{ID: "goa", Name: "Goa"}, 60))
	assert.True(t, mr.Exists("kennedia:city:goa"))

	ok, err = c.Get(ctx, "city:goa", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Goa", got.Name)

	require.NoError(t, c.Del(ctx, "city:goa"))
	ok, err = c.Get(ctx, "city:goa", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_TTL(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", 30))
	assert.Equal(t, 30*time.Second, mr.TTL("kennedia:k"))

	mr.FastForward(31 * time.Second)
	var s string
	ok, err := c.Get(ctx, "k", &s)
	require.NoError(t, err)
	assert.False(t, ok)
}
