package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"linkcare-service/internal/app/config"
)

const redisPingTimeout = 5 * time.Second

// NewRedisClient connects to the redis holding the session cache and the
// admission locks.
func NewRedisClient(driverConfig *config.DriverConfig, logger *zap.Logger) *redis.Client {
	addr := fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: driverConfig.Redis.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis at %s: %v", addr, err)
	}

	logger.Info("Successfully connected to redis", zap.String("address", addr))
	return rdb
}
