// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"meliyah/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient is the dedicated client for booking session storage.
var SessionCacheClient *redis.Client

// InitRedis initializes the Redis client used for booking sessions.
func InitRedis() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the booking session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitRedis()
	}
	return SessionCacheClient
}
