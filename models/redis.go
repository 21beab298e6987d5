package models

import (
	"context"
	"log"

	"plantnet/config"

	"github.com/redis/go-redis/v9"
)

// InitRedis returns nil when redis is not configured or unreachable; the
// API then runs without cache.
func InitRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	var opt *redis.Options
	switch {
	case cfg.RedisURL != "":
		parsedOpt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running without cache")
			return nil
		}
		opt = parsedOpt
	case cfg.RedisAddr != "":
		opt = &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		}
	default:
		log.Println("Redis not configured, running without cache")
		return nil
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without cache")
		_ = client.Close()
		return nil
	}

	log.Println("Redis connected")
	return client
}

func CloseRedis(client *redis.Client) {
	if client != nil {
		client.Close()
	}
}
