package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Config holds configuration for the optional Redis lock backend.
type Config struct {
	// URL is a redis:// URL or a bare host:port. Empty keeps locking in-process.
	URL string `mapstructure:"url" default:""`
	// LockTTLSeconds bounds how long a crashed holder can block a key.
	LockTTLSeconds int `mapstructure:"lock_ttl_seconds" default:"300"`
	// KeyPrefix namespaces lock keys.
	KeyPrefix string `mapstructure:"key_prefix" default:"post-receptor:lock:"`
}

// Enabled reports whether a Redis backend is configured.
func (c Config) Enabled() bool {
	return c.URL != ""
}

// Connect builds a Redis client from the configuration and pings it.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		opt = &redis.Options{Addr: cfg.URL}
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// Deletes the key only while it still carries our token.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a Locker shared by every instance pointing at the same Redis.
// Each key is a SET NX lease with a TTL.
type RedisLocker struct {
	client redis.Cmdable
	ttl    time.Duration
	prefix string
	poll   time.Duration
}

// NewRedisLocker creates a RedisLocker.
func NewRedisLocker(client redis.Cmdable, cfg Config) *RedisLocker {
	ttl := time.Duration(cfg.LockTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisLocker{
		client: client,
		ttl:    ttl,
		prefix: cfg.KeyPrefix,
		poll:   50 * time.Millisecond,
	}
}

// Lock acquires key, polling until the lease is free or ctx ends.
func (r *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := r.prefix + key
	token := uuid.NewString()

	for {
		ok, err := r.client.SetNX(ctx, redisKey, token, r.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.poll):
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// The caller's context may already be done; release on a fresh one.
			releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			// On failure the TTL reclaims the key.
			_ = unlockScript.Run(releaseCtx, r.client, []string{redisKey}, token).Err()
		})
	}, nil
}
