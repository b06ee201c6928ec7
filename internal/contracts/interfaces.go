package contracts

import (
	"context"
	"time"
)

// MarketDataProvider supplies listing and daily snapshot data
// ⭐ SSOT: 시장 기준 데이터 인터페이스
type MarketDataProvider interface {
	// Listing returns all tradable instruments with metadata
	Listing(ctx context.Context) ([]StockInfo, error)

	// DailySnapshot returns price/value data for every instrument on a date (YYYYMMDD)
	DailySnapshot(ctx context.Context, date string) ([]DailyQuote, error)

	// MarketCapSnapshot returns market caps for every instrument on a date (YYYYMMDD)
	MarketCapSnapshot(ctx context.Context, date string) ([]MarketCap, error)
}

// NewsSearcher returns recent headlines for a query, provider-relevance order
// ⭐ SSOT: 뉴스 검색 인터페이스
type NewsSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]Headline, error)
}

// PriceHistoryProvider supplies daily candles for charting and the
// snapshot approximation fallback
// ⭐ SSOT: 일봉 히스토리 인터페이스
type PriceHistoryProvider interface {
	History(ctx context.Context, code string, from, to time.Time) ([]Candle, error)
}

// Cache is a TTL cache keyed by call site + arguments.
// 테스트에서는 NopCache를 주입한다
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// NopCache never hits and never stores
type NopCache struct{}

func (NopCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (NopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
