package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"boba_pos/internal/models"

	"github.com/go-redis/redis/v8"
)

const menuKey = "menu:all"

// Client caches the menu catalog. The menu is read on every cashier screen
// refresh and changes rarely, so it is the one read path worth caching.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func Initialize(redisURL string, ttl time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

func (c *Client) GetMenu() ([]models.MenuItem, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, menuKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("menu not cached")
		}
		return nil, fmt.Errorf("failed to get cached menu: %w", err)
	}

	var items []models.MenuItem
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached menu: %w", err)
	}
	return items, nil
}

func (c *Client) SetMenu(items []models.MenuItem) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal menu: %w", err)
	}
	return c.rdb.Set(ctx, menuKey, jsonData, c.ttl).Err()
}

func (c *Client) InvalidateMenu() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, menuKey).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
