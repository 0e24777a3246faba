package kvstore

import (
	"context"

	"github.com/naturesnacks/snackstore/pkg/redis"
)

// Redis stores entries under the backup namespace without expiry.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.GetBackup(ctx, key)
	if redis.IsMiss(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.client.SetBackup(ctx, key, value)
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}
