package storage

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/go-redis/redis/v8"
)

var _ Backend = (*RedisBackend)(nil)

// RedisBackend stores each namespaced collection as one string value.
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (r *RedisBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (r *RedisBackend) Save(ctx context.Context, key string, value []byte) error {
	return classifyRedis(r.client.Set(ctx, key, value, 0).Err())
}

func (r *RedisBackend) Keys(ctx context.Context, prefix string) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)
	for {
		batch, next, err := r.client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		if next == 0 {
			break
		}
		cursor = next
	}
	sort.Strings(keys)
	return keys, nil
}

// classifyRedis maps the maxmemory rejection onto ErrQuotaExceeded.
func classifyRedis(err error) error {
	if err == nil {
		return nil
	}
	if strings.HasPrefix(err.Error(), "OOM ") {
		return errors.Join(ErrQuotaExceeded, err)
	}
	return err
}
