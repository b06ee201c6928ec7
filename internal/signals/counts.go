package signals

import (
	"context"
	"fmt"

	"github.com/wonny/themeleader/internal/contracts"
	"github.com/wonny/themeleader/pkg/logger"
)

// breakoutSuffix biases the news-hit query toward market-moving coverage
// ("특징주" = 장중 특이 종목 기사)
const breakoutSuffix = "특징주"

// CountResult carries a headline count together with how it was obtained.
// Degraded = 프로바이더 장애를 0으로 강제한 경우
type CountResult struct {
	Count    int
	Degraded bool
}

// Counter derives the two search-count signals for a stock name
// ⭐ SSOT: 인기/뉴스 시그널 집계는 여기서만
type Counter struct {
	news   contracts.NewsSearcher
	limit  int
	logger *logger.Logger
}

// NewCounter creates a signal counter. limit caps each headline query.
func NewCounter(news contracts.NewsSearcher, limit int, log *logger.Logger) *Counter {
	return &Counter{
		news:   news,
		limit:  limit,
		logger: log,
	}
}

// Popularity counts general headlines mentioning the stock name.
// 검색 관심도 대리값. 실패는 0건으로 흡수하고 재시도하지 않는다
func (c *Counter) Popularity(ctx context.Context, name string) CountResult {
	return c.count(ctx, name)
}

// NewsHits counts headlines from the breakout-flavored query
func (c *Counter) NewsHits(ctx context.Context, name string) CountResult {
	return c.count(ctx, fmt.Sprintf("%s %s", name, breakoutSuffix))
}

func (c *Counter) count(ctx context.Context, query string) CountResult {
	headlines, err := c.news.Search(ctx, query, c.limit)
	if err != nil {
		c.logger.WithError(err).WithField("query", query).Debug("News count degraded to zero")
		return CountResult{Count: 0, Degraded: true}
	}
	return CountResult{Count: len(headlines)}
}
