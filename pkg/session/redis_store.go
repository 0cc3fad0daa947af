package session

import (
	"errors"
	"time"

	"github.com/bkormos/portico/pkg/cache"
)

const redisKeyPrefix = "portico:session:"

// RedisStore persists session records in Redis via pkg/cache, for
// deployments running more than one instance behind a balancer.
type RedisStore struct{}

// NewRedisStore returns a Store backed by the shared Redis client.
// cache.Connect must have succeeded first.
func NewRedisStore() (*RedisStore, error) {
	if cache.RDB == nil {
		return nil, errors.New("session: redis store requires a connected cache")
	}
	return &RedisStore{}, nil
}

func (s *RedisStore) Get(sid string) (*Record, bool) {
	var rec Record
	if !cache.Get(redisKeyPrefix+sid, &rec) {
		return nil, false
	}
	return &rec, true
}

func (s *RedisStore) Put(sid string, rec *Record, ttl time.Duration) error {
	return cache.Set(redisKeyPrefix+sid, rec, ttl)
}

func (s *RedisStore) Delete(sid string) error {
	return cache.Del(redisKeyPrefix + sid)
}
