package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedProduct is one catalog query result held by the front end.
type CachedProduct struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int32  `json:"quantity"`
}

// ProductCache caches catalog query results by product name. Entries
// live until a catalog invalidation evicts them; a stale read in the
// window between a stock change and its invalidation is tolerated.
type ProductCache interface {
	Get(ctx context.Context, name string) (CachedProduct, bool)
	Set(ctx context.Context, product CachedProduct)
	Invalidate(ctx context.Context, name string)
	Close() error
}

// memoryCache is the default in-process cache.
type memoryCache struct {
	mu       sync.RWMutex
	products map[string]CachedProduct
}

func NewMemoryCache() ProductCache {
	return &memoryCache{products: make(map[string]CachedProduct)}
}

func (c *memoryCache) Get(ctx context.Context, name string) (CachedProduct, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	product, ok := c.products[name]
	return product, ok
}

func (c *memoryCache) Set(ctx context.Context, product CachedProduct) {
	c.mu.Lock()
	c.products[product.Name] = product
	c.mu.Unlock()
}

func (c *memoryCache) Invalidate(ctx context.Context, name string) {
	c.mu.Lock()
	delete(c.products, name)
	c.mu.Unlock()
}

func (c *memoryCache) Close() error {
	return nil
}

// redisCache keeps the product cache in Redis so several front-end
// instances can share it. Read failures count as misses and write
// failures are only logged: the catalog stays the source of truth
// either way.
type redisCache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisCache(addr string, logger *slog.Logger) (ProductCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &redisCache{client: client, logger: logger}, nil
}

func productKey(name string) string {
	return fmt.Sprintf("product:%s", name)
}

func (c *redisCache) Get(ctx context.Context, name string) (CachedProduct, bool) {
	data, err := c.client.Get(ctx, productKey(name)).Bytes()
	if err == redis.Nil {
		return CachedProduct{}, false
	}
	if err != nil {
		c.logger.Warn("redis get failed", "product", name, "error", err)
		return CachedProduct{}, false
	}

	var product CachedProduct
	if err := json.Unmarshal(data, &product); err != nil {
		c.logger.Warn("failed to unmarshal cached product", "product", name, "error", err)
		return CachedProduct{}, false
	}
	return product, true
}

func (c *redisCache) Set(ctx context.Context, product CachedProduct) {
	data, err := json.Marshal(product)
	if err != nil {
		c.logger.Warn("failed to marshal product for cache", "product", product.Name, "error", err)
		return
	}

	// No TTL: entries are evicted by invalidations, not by age.
	if err := c.client.Set(ctx, productKey(product.Name), data, 0).Err(); err != nil {
		c.logger.Warn("redis set failed", "product", product.Name, "error", err)
	}
}

func (c *redisCache) Invalidate(ctx context.Context, name string) {
	if err := c.client.Del(ctx, productKey(name)).Err(); err != nil {
		c.logger.Warn("redis delete failed", "product", name, "error", err)
	}
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
