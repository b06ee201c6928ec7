package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache provides typed caching utilities over Redis
// ⭐ SSOT: 프로바이더 응답 캐시는 여기서만
// 키는 호출 지점 이름 + 인자, TTL은 호출 지점별 상수
type Cache struct {
	client *Client
	prefix string
}

// NewCache creates a new cache helper
func NewCache(client *Client, prefix string) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
	}
}

// Get retrieves a cached value
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !c.client.Enabled() {
		return false, nil
	}

	fullKey := fmt.Sprintf("%s:cache:%s", c.prefix, key)
	data, err := c.client.Redis().Get(ctx, fullKey).Bytes()
	if err != nil {
		// Key not found is not an error
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache unmarshal failed: %w", err)
	}

	return true, nil
}

// Set stores a value in cache with TTL
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !c.client.Enabled() {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}

	fullKey := fmt.Sprintf("%s:cache:%s", c.prefix, key)
	return c.client.Redis().Set(ctx, fullKey, data, ttl).Err()
}

// Delete removes a cached value
func (c *Cache) Delete(ctx context.Context, key string) error {
	if !c.client.Enabled() {
		return nil
	}

	fullKey := fmt.Sprintf("%s:cache:%s", c.prefix, key)
	return c.client.Redis().Del(ctx, fullKey).Err()
}

// Predefined TTLs
const (
	TTLListing  = 30 * time.Minute // 상장 목록
	TTLSnapshot = 10 * time.Minute // 일별 시세/시총
	TTLNews     = 10 * time.Minute // 뉴스 검색
	TTLHistory  = 10 * time.Minute // 일봉 히스토리
)

// Common cache key generators

func ListingKey() string {
	return "krx:listing"
}

func SnapshotKey(date string) string {
	return fmt.Sprintf("krx:snapshot:%s", date)
}

func MarketCapKey(date string) string {
	return fmt.Sprintf("krx:marcap:%s", date)
}

func NewsKey(query string, limit int) string {
	return fmt.Sprintf("naver:news:%s:%d", query, limit)
}

func HistoryKey(code, from, to string) string {
	return fmt.Sprintf("naver:history:%s:%s:%s", code, from, to)
}
