package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"plantnet/models"

	"github.com/redis/go-redis/v9"
)

const (
	plantListCacheKey     = "plants_list_l20"
	plantListCachePattern = "plants_list_*"
	plantListCacheTTL     = 5 * time.Minute
)

// PlantCache caches the capped plant page. A nil client disables it.
type PlantCache struct {
	client *redis.Client
}

func NewPlantCache(client *redis.Client) *PlantCache {
	return &PlantCache{client: client}
}

func (c *PlantCache) enabled() bool {
	return c != nil && c.client != nil
}

func (c *PlantCache) Get(ctx context.Context) ([]models.Plant, bool) {
	if !c.enabled() {
		return nil, false
	}
	cached, err := c.client.Get(ctx, plantListCacheKey).Result()
	if err != nil {
		return nil, false
	}
	var plants []models.Plant
	if err := json.Unmarshal([]byte(cached), &plants); err != nil {
		return nil, false
	}
	return plants, true
}

func (c *PlantCache) Set(ctx context.Context, plants []models.Plant) {
	if !c.enabled() {
		return
	}
	data, err := json.Marshal(plants)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, plantListCacheKey, data, plantListCacheTTL).Err(); err != nil {
		log.Printf("plant cache set failed: %v", err)
	}
}

func (c *PlantCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	iter := c.client.Scan(ctx, 0, plantListCachePattern, 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("plant cache invalidation failed: %v", err)
	}
}
