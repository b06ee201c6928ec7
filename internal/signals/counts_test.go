package signals

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/themeleader/internal/contracts"
	"github.com/wonny/themeleader/pkg/logger"
)

// fakeNews records queries and serves canned counts
type fakeNews struct {
	counts  map[string]int
	err     error
	queries []string
	limits  []int
}

func (f *fakeNews) Search(ctx context.Context, query string, limit int) ([]contracts.Headline, error) {
	f.queries = append(f.queries, query)
	f.limits = append(f.limits, limit)
	if f.err != nil {
		return nil, f.err
	}
	headlines := make([]contracts.Headline, f.counts[query])
	return headlines, nil
}

func TestPopularityQueriesPlainName(t *testing.T) {
	news := &fakeNews{counts: map[string]int{"삼성전자": 7}}
	counter := NewCounter(news, 20, logger.NewNop())

	result := counter.Popularity(context.Background(), "삼성전자")

	assert.Equal(t, 7, result.Count)
	assert.False(t, result.Degraded)
	assert.Equal(t, []string{"삼성전자"}, news.queries)
	assert.Equal(t, []int{20}, news.limits)
}

func TestNewsHitsAppendsBreakoutSuffix(t *testing.T) {
	news := &fakeNews{counts: map[string]int{"삼성전자 특징주": 3}}
	counter := NewCounter(news, 20, logger.NewNop())

	result := counter.NewsHits(context.Background(), "삼성전자")

	assert.Equal(t, 3, result.Count)
	assert.False(t, result.Degraded)
	assert.Equal(t, []string{"삼성전자 특징주"}, news.queries)
}

func TestCountDegradesToZeroOnProviderFailure(t *testing.T) {
	news := &fakeNews{err: errors.New("naver down")}
	counter := NewCounter(news, 20, logger.NewNop())

	pop := counter.Popularity(context.Background(), "삼성전자")
	hits := counter.NewsHits(context.Background(), "삼성전자")

	// 실패는 0건으로 흡수되며 Degraded로 구분된다
	assert.Equal(t, 0, pop.Count)
	assert.True(t, pop.Degraded)
	assert.Equal(t, 0, hits.Count)
	assert.True(t, hits.Degraded)

	// 재시도 없음: 쿼리당 1회 호출
	assert.Len(t, news.queries, 2)
}

func TestZeroHeadlinesIsNotDegraded(t *testing.T) {
	news := &fakeNews{counts: map[string]int{}}
	counter := NewCounter(news, 20, logger.NewNop())

	result := counter.Popularity(context.Background(), "무명종목")

	assert.Equal(t, 0, result.Count)
	assert.False(t, result.Degraded, "empty result is informative, not a failure")
}
