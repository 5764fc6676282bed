package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestCache_SetAndGetJSON(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, c.SetJSON(ctx, "k", payload{Name: "feed", Count: 3}, time.Minute))

	var got payload
	found, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "feed", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestCache_GetJSON_Miss(t *testing.T) {
	c := newTestCache(t)

	var got map[string]any
	found, err := c.GetJSON(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_Aside_FetchesOnceThenServesFromCache(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *[]int) func() error {
		return func() error {
			calls++
			*dest = []int{1, 2, 3}
			return nil
		}
	}

	var first []int
	require.NoError(t, c.Aside(ctx, "list", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, calls)

	var second []int
	require.NoError(t, c.Aside(ctx, "list", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestCache_Invalidate(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k", 1, time.Minute))
	c.Invalidate(ctx, "k")

	var got int
	found, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

// Without a Redis connection the cache degrades to a pass-through.
func TestCache_NilClientDegradesGracefully(t *testing.T) {
	c := NewWithClient(nil)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k", 1, time.Minute))

	var got int
	found, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	fetched := false
	var dest []string
	require.NoError(t, c.Aside(ctx, "k", &dest, time.Minute, func() error {
		fetched = true
		dest = []string{"from-db"}
		return nil
	}))
	assert.True(t, fetched)
	assert.Equal(t, []string{"from-db"}, dest)

	c.Invalidate(ctx, "k")
	assert.NoError(t, c.Close())
}
