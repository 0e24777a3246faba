package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/naturesnacks/snackstore/pkg/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, prefix string) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return Wrap(rdb, prefix), mr
}

func TestFixedWindowAllow(t *testing.T) {
	ctx := context.Background()
	client, mr := newTestClient(t, "")

	allowed, count, err := client.FixedWindowAllow(ctx, "checkout:sess-1", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, time.Minute, mr.TTL("snackstore:rate_limit:checkout:sess-1"))

	mr.FastForward(20 * time.Second)
	allowed, count, err = client.FixedWindowAllow(ctx, "checkout:sess-1", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, 40*time.Second, mr.TTL("snackstore:rate_limit:checkout:sess-1"), "window must not be extended by later hits")

	allowed, count, err = client.FixedWindowAllow(ctx, "checkout:sess-1", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, int64(3), count)

	mr.FastForward(time.Minute)
	allowed, count, err = client.FixedWindowAllow(ctx, "checkout:sess-1", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "a new window starts after expiry")
	assert.Equal(t, int64(1), count)
}

func TestFixedWindowRejectsZeroWindow(t *testing.T) {
	client, _ := newTestClient(t, "")
	_, _, err := client.FixedWindowAllow(context.Background(), "checkout:s", 1, 0)
	assert.Error(t, err)
}

func TestBackupRoundTripUsesPrefix(t *testing.T) {
	ctx := context.Background()
	client, mr := newTestClient(t, " shop: ")

	_, err := client.GetBackup(ctx, "order_missing")
	assert.True(t, IsMiss(err), "expected miss, got %v", err)

	require.NoError(t, client.SetBackup(ctx, "orders_index", `["NS1"]`))
	got, err := client.GetBackup(ctx, "orders_index")
	require.NoError(t, err)
	assert.Equal(t, `["NS1"]`, got)

	raw, err := mr.Get("shop:backup:orders_index")
	require.NoError(t, err)
	assert.Equal(t, `["NS1"]`, raw)
	assert.Zero(t, mr.TTL("shop:backup:orders_index"), "backup entries never expire")
}

func TestUninitializedClient(t *testing.T) {
	var client *Client
	assert.Error(t, client.Ping(context.Background()))
	assert.NoError(t, client.Close())
	_, _, err := client.FixedWindowAllow(context.Background(), "s", 1, time.Second)
	assert.ErrorIs(t, err, errNotInitialized)
}

func TestKeySkipsBlankParts(t *testing.T) {
	client := Wrap(nil, "")
	assert.Equal(t, "snackstore:backup:x", client.key(kindBackup, " ", "x"))
	assert.Equal(t, "snackstore:rate_limit", client.key(kindRateLimit))
}

func TestOptionsFromConfig(t *testing.T) {
	_, err := optionsFromConfig(config.RedisConfig{})
	assert.Error(t, err, "expected error without url or address")

	opts, err := optionsFromConfig(config.RedisConfig{Address: "localhost:6379", DB: 2, PoolSize: 7, DialTimeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 7, opts.PoolSize)
	assert.Equal(t, time.Second, opts.DialTimeout)

	opts, err = optionsFromConfig(config.RedisConfig{URL: "redis://:secret@cache:6380/3", DB: 5})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 3, opts.DB, "url db wins over config db")
	assert.Equal(t, "secret", opts.Password)
}

func TestNewAgainstMiniredis(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	client, err := New(ctx, config.RedisConfig{Address: mr.Addr(), KeyPrefix: "ns"}, nil)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Ping(ctx))
	allowed, _, err := client.FixedWindowAllow(ctx, "checkout:s", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.True(t, mr.Exists("ns:rate_limit:checkout:s"))

	mr.Close()
	_, err = New(ctx, config.RedisConfig{Address: mr.Addr(), DialTimeout: 100 * time.Millisecond}, nil)
	assert.Error(t, err)
}
