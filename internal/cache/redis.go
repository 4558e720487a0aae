package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent. Callers fall through to the
// store, the cache is never authoritative.
var ErrCacheMiss = errors.New("cache miss")

const (
	homepageConfigKey = "homepage:config"
	heroKeyPrefix     = "hero:"
)

// HomepageConfigKey is the cache slot of the merged homepage configuration.
func HomepageConfigKey() string {
	return homepageConfigKey
}

// HeroKey is the cache slot of a collection's current hero id.
func HeroKey(collection string) string {
	return heroKeyPrefix + collection
}

type Redis struct {
	client *redis.Client
}

func NewRedis(addr string) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // No password set
		DB:       0,  // Use default DB
		Protocol: 2,  // Connection protocol
	})

	return &Redis{client: client}
}

func (r *Redis) Client() *redis.Client {
	return r.client
}

func (r *Redis) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	value, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *Redis) Get(ctx context.Context, key string, out any) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, out)
}

func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}
