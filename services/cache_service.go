package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gomodule/redigo/redis"
)

// CacheService is a thin wrapper over a Redis pool. A nil CacheService (or
// one created without REDIS_URL) disables caching; every method becomes a
// no-op miss so callers never need to branch on availability.
type CacheService struct {
	Pool *redis.Pool
}

// NewCacheService builds a CacheService from REDIS_URL. Returns nil when
// the variable is unset so the API keeps working without Redis.
func NewCacheService() *CacheService {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		log.Println("REDIS_URL not set; caching disabled")
		return nil
	}
	pool := &redis.Pool{
		MaxIdle:     5,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(url)
		},
	}
	log.Println("Redis cache configured")
	return &CacheService{Pool: pool}
}

func (cs *CacheService) enabled() bool {
	return cs != nil && cs.Pool != nil
}

// Get returns the cached value for key, or "" on miss or error
func (cs *CacheService) Get(key string) string {
	if !cs.enabled() {
		return ""
	}
	conn := cs.Pool.Get()
	defer conn.Close()
	value, err := redis.String(conn.Do("GET", key))
	if err != nil {
		return ""
	}
	return value
}

// SetEx stores value under key with a TTL in seconds
func (cs *CacheService) SetEx(key string, ttlSeconds int, value string) {
	if !cs.enabled() {
		return
	}
	conn := cs.Pool.Get()
	defer conn.Close()
	if _, err := conn.Do("SETEX", key, ttlSeconds, value); err != nil {
		log.Printf("Failed to cache key %s: %v", key, err)
	}
}

// Delete removes a key
func (cs *CacheService) Delete(key string) {
	if !cs.enabled() {
		return
	}
	conn := cs.Pool.Get()
	defer conn.Close()
	if _, err := conn.Do("DEL", key); err != nil {
		log.Printf("Failed to delete cache key %s: %v", key, err)
	}
}

// Incr increments a counter key and returns the new value
func (cs *CacheService) Incr(key string) int64 {
	if !cs.enabled() {
		return 0
	}
	conn := cs.Pool.Get()
	defer conn.Close()
	value, err := redis.Int64(conn.Do("INCR", key))
	if err != nil {
		log.Printf("Failed to increment cache key %s: %v", key, err)
		return 0
	}
	return value
}

// Version returns the current value of a list-cache version key ("0" when
// unset). List caches embed the version in their keys; bumping the version
// invalidates every page at once.
func (cs *CacheService) Version(verKey string) string {
	if !cs.enabled() {
		return "0"
	}
	if v := cs.Get(verKey); v != "" {
		return v
	}
	return "0"
}

// BumpVersion invalidates all list caches tied to verKey
func (cs *CacheService) BumpVersion(verKey string) {
	cs.Incr(verKey)
}

// ListCacheKey builds a version-scoped cache key from parts
func ListCacheKey(prefix, version string, parts ...string) string {
	key := fmt.Sprintf("%s:v:%s", prefix, version)
	for _, p := range parts {
		key += ":" + p
	}
	return key
}
