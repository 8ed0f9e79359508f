package db

import "github.com/redis/go-redis/v9"

// ConnectRedis returns nil when no address is configured; the caller falls
// back to in-memory persistence and a local-only stream hub.
func ConnectRedis(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}
