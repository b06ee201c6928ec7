package naver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/themeleader/pkg/config"
	"github.com/wonny/themeleader/pkg/httputil"
	"github.com/wonny/themeleader/pkg/logger"
)

// 실제 응답은 작은따옴표를 쓰는 quasi-JSON이다
const chartFixture = `[['날짜', '시가', '고가', '저가', '종가', '거래량', '외국인소진율'],
["20260825", 71000, 72500, 70800, 72000, 1234567, 52.1],
["20260826", 72000, 73000, 71500, 72800, 2345678, 52.3],
]`

func TestParseChartResponse(t *testing.T) {
	candles, err := parseChartResponse(chartFixture)
	require.NoError(t, err)
	require.Len(t, candles, 2, "header row is skipped")

	first := candles[0]
	assert.Equal(t, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, 71000.0, first.Open)
	assert.Equal(t, 72500.0, first.High)
	assert.Equal(t, 70800.0, first.Low)
	assert.Equal(t, 72000.0, first.Close)
	assert.Equal(t, int64(1234567), first.Volume)
}

func TestParseChartResponseRegexFallback(t *testing.T) {
	// 후행 쉼표 없는 변형 등 JSON 디코딩이 깨지는 페이로드
	body := `chartData = [["20260825", 71000, 72500, 70800, 72000, 1234567]];`

	candles, err := parseChartResponse(body)
	require.NoError(t, err)
	require.Len(t, candles, 1)
	assert.Equal(t, 72000.0, candles[0].Close)
	assert.Equal(t, int64(1234567), candles[0].Volume)
}

func TestParseChartResponseSkipsMalformedRows(t *testing.T) {
	body := `[['날짜', '시가', '고가', '저가', '종가', '거래량'],
["20260825", 71000, 72500],
["not-a-date", 1, 2, 3, 4, 5],
["20260826", 72000, 73000, 71500, 72800, 2345678],
]`

	candles, err := parseChartResponse(body)
	require.NoError(t, err)
	require.Len(t, candles, 1)
	assert.Equal(t, time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), candles[0].Date)
}

func TestAsFloat(t *testing.T) {
	assert.Equal(t, 1.5, asFloat(1.5))
	assert.Equal(t, 3.0, asFloat(3))
	assert.Equal(t, 7.0, asFloat(" 7 "))
	assert.Equal(t, 0.0, asFloat(nil))
	assert.Equal(t, 0.0, asFloat(true))
}

func TestHistoryAgainstServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/siseJson.naver", r.URL.Path)
		assert.Equal(t, "005930", r.URL.Query().Get("symbol"))
		assert.Equal(t, "20260801", r.URL.Query().Get("startTime"))
		assert.Equal(t, "20260828", r.URL.Query().Get("endTime"))
		assert.Equal(t, "day", r.URL.Query().Get("timeframe"))
		w.Write([]byte(chartFixture))
	}))
	defer server.Close()

	httpClient := httputil.New(&config.Config{}, logger.NewNop()).DisableRetry()
	client := NewClient(httpClient, logger.NewNop(), "", server.URL)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	candles, err := client.History(context.Background(), "005930", from, to)
	require.NoError(t, err)
	assert.Len(t, candles, 2)
}
