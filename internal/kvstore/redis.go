package kvstore

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// casScript writes a document hash only when its version matches ARGV[2]
// (or ARGV[2] is negative). It returns {written, version}.
var casScript = redis.NewScript(`
    local cur = tonumber(redis.call('HGET', KEYS[1], 'version') or '0')
    local expect = tonumber(ARGV[2])
    if expect >= 0 and cur ~= expect then
        return { 0, cur }
    end
    local nxt = cur + 1
    redis.call('HSET', KEYS[1], 'data', ARGV[1], 'version', nxt)
    return { 1, nxt }
`)

// RedisBackend stores each key as a hash with "data" and "version" fields.
type RedisBackend struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisBackend(rdb *redis.Client, prefix string) *RedisBackend {
	if prefix == "" {
		prefix = "progear"
	}
	return &RedisBackend{rdb: rdb, prefix: prefix}
}

func (b *RedisBackend) key(k string) string { return b.prefix + ":kv:" + k }

func (b *RedisBackend) Read(ctx context.Context, key string) ([]byte, int64, error) {
	vals, err := b.rdb.HMGet(ctx, b.key(key), "data", "version").Result()
	if err != nil {
		return nil, 0, fmt.Errorf("redis hmget %s: %w", key, err)
	}
	if len(vals) != 2 || vals[0] == nil {
		return nil, 0, ErrNotFound
	}
	data, _ := vals[0].(string)
	var version int64
	if s, ok := vals[1].(string); ok {
		version, _ = strconv.ParseInt(s, 10, 64)
	}
	return []byte(data), version, nil
}

func (b *RedisBackend) Write(ctx context.Context, key string, data []byte, expect int64) (int64, error) {
	res, err := casScript.Run(ctx, b.rdb, []string{b.key(key)}, string(data), expect).Result()
	if err != nil {
		return 0, fmt.Errorf("redis cas %s: %w", key, err)
	}
	arr, ok := res.([]interface{})
	if !ok || len(arr) != 2 {
		return 0, fmt.Errorf("redis cas %s: unexpected reply %#v", key, res)
	}
	written, _ := arr[0].(int64)
	version, _ := arr[1].(int64)
	if written != 1 {
		return version, ErrVersionConflict
	}
	return version, nil
}

func (b *RedisBackend) Delete(ctx context.Context, key string) error {
	return b.rdb.Del(ctx, b.key(key)).Err()
}
