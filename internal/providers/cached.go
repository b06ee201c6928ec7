// Package providers decorates the external data sources with TTL caching.
// 캐시 키 = 호출 지점 + 인자. 코어 로직은 캐시를 직접 만지지 않는다.
package providers

import (
	"context"
	"time"

	"github.com/wonny/themeleader/internal/contracts"
	"github.com/wonny/themeleader/pkg/logger"
	"github.com/wonny/themeleader/pkg/redis"
)

// CachedMarketData wraps a MarketDataProvider with per-call-site TTLs
type CachedMarketData struct {
	inner  contracts.MarketDataProvider
	cache  contracts.Cache
	logger *logger.Logger
}

// NewCachedMarketData creates the caching decorator
func NewCachedMarketData(inner contracts.MarketDataProvider, cache contracts.Cache, log *logger.Logger) *CachedMarketData {
	return &CachedMarketData{inner: inner, cache: cache, logger: log}
}

func (p *CachedMarketData) Listing(ctx context.Context) ([]contracts.StockInfo, error) {
	var cached []contracts.StockInfo
	if hit := p.lookup(ctx, redis.ListingKey(), &cached); hit {
		return cached, nil
	}

	listing, err := p.inner.Listing(ctx)
	if err != nil {
		return nil, err
	}
	p.store(ctx, redis.ListingKey(), listing, redis.TTLListing)
	return listing, nil
}

func (p *CachedMarketData) DailySnapshot(ctx context.Context, date string) ([]contracts.DailyQuote, error) {
	var cached []contracts.DailyQuote
	if hit := p.lookup(ctx, redis.SnapshotKey(date), &cached); hit {
		return cached, nil
	}

	quotes, err := p.inner.DailySnapshot(ctx, date)
	if err != nil {
		return nil, err
	}
	p.store(ctx, redis.SnapshotKey(date), quotes, redis.TTLSnapshot)
	return quotes, nil
}

func (p *CachedMarketData) MarketCapSnapshot(ctx context.Context, date string) ([]contracts.MarketCap, error) {
	var cached []contracts.MarketCap
	if hit := p.lookup(ctx, redis.MarketCapKey(date), &cached); hit {
		return cached, nil
	}

	caps, err := p.inner.MarketCapSnapshot(ctx, date)
	if err != nil {
		return nil, err
	}
	p.store(ctx, redis.MarketCapKey(date), caps, redis.TTLSnapshot)
	return caps, nil
}

// lookup is a best-effort cache read: 실패는 미스로 취급
func (p *CachedMarketData) lookup(ctx context.Context, key string, dest interface{}) bool {
	hit, err := p.cache.Get(ctx, key, dest)
	if err != nil {
		p.logger.WithError(err).WithField("key", key).Debug("Cache read failed")
		return false
	}
	return hit
}

// store is a best-effort cache write
func (p *CachedMarketData) store(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if err := p.cache.Set(ctx, key, value, ttl); err != nil {
		p.logger.WithError(err).WithField("key", key).Debug("Cache write failed")
	}
}

// CachedNews wraps a NewsSearcher
type CachedNews struct {
	inner  contracts.NewsSearcher
	cache  contracts.Cache
	logger *logger.Logger
}

// NewCachedNews creates the caching decorator
func NewCachedNews(inner contracts.NewsSearcher, cache contracts.Cache, log *logger.Logger) *CachedNews {
	return &CachedNews{inner: inner, cache: cache, logger: log}
}

func (p *CachedNews) Search(ctx context.Context, query string, limit int) ([]contracts.Headline, error) {
	key := redis.NewsKey(query, limit)

	var cached []contracts.Headline
	if hit, err := p.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	headlines, err := p.inner.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if err := p.cache.Set(ctx, key, headlines, redis.TTLNews); err != nil {
		p.logger.WithError(err).WithField("key", key).Debug("Cache write failed")
	}
	return headlines, nil
}

// CachedHistory wraps a PriceHistoryProvider
type CachedHistory struct {
	inner  contracts.PriceHistoryProvider
	cache  contracts.Cache
	logger *logger.Logger
}

// NewCachedHistory creates the caching decorator
func NewCachedHistory(inner contracts.PriceHistoryProvider, cache contracts.Cache, log *logger.Logger) *CachedHistory {
	return &CachedHistory{inner: inner, cache: cache, logger: log}
}

func (p *CachedHistory) History(ctx context.Context, code string, from, to time.Time) ([]contracts.Candle, error) {
	key := redis.HistoryKey(code, from.Format("20060102"), to.Format("20060102"))

	var cached []contracts.Candle
	if hit, err := p.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	candles, err := p.inner.History(ctx, code, from, to)
	if err != nil {
		return nil, err
	}
	if err := p.cache.Set(ctx, key, candles, redis.TTLHistory); err != nil {
		p.logger.WithError(err).WithField("key", key).Debug("Cache write failed")
	}
	return candles, nil
}
