package config

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client
var Ctx = context.Background()

// ConnectRedis is optional: when REDIS_ADDR is unset or the server is
// unreachable, RDB stays nil and callers skip caching.
func ConnectRedis() {
	redisAddr := AppConfig.Redis.Addr
	if redisAddr == "" {
		slog.Warn("REDIS_ADDR is not set, caching disabled")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		slog.Error("Failed to connect to Redis, caching disabled", "error", err)
		RDB = nil
		return
	}

	slog.Info("Connected to Redis")
}
