package cache

import (
	"context"
	"testing"
	"time"

	dom "chirper/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*MessageCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewMessageCache(rdb, time.Minute), mr
}

func sampleMessages() []dom.Message {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return []dom.Message{
		{ID: 1, PostedBy: 1, Text: "hi", PostedAt: at},
		{ID: 2, PostedBy: 2, Text: "yo", PostedAt: at},
	}
}

func TestListRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	miss, err := c.GetList(ctx)
	require.NoError(t, err)
	assert.Nil(t, miss)

	want := sampleMessages()
	require.NoError(t, c.SetList(ctx, want))

	got, err := c.GetList(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAccountListRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	want := sampleMessages()[:1]
	require.NoError(t, c.SetAccountList(ctx, 1, want))

	got, err := c.GetAccountList(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Another account's key is independent.
	other, err := c.GetAccountList(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestInvalidateAll(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetList(ctx, sampleMessages()))
	require.NoError(t, c.SetAccountList(ctx, 1, sampleMessages()[:1]))
	require.NoError(t, c.SetAccountList(ctx, 2, sampleMessages()[1:]))

	require.NoError(t, c.InvalidateAll(ctx))

	assert.False(t, mr.Exists(keyList))
	assert.False(t, mr.Exists(keyAccountPrefix+"1"))
	assert.False(t, mr.Exists(keyAccountPrefix+"2"))
}

func TestEntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetList(ctx, sampleMessages()))
	mr.FastForward(2 * time.Minute)

	got, err := c.GetList(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
