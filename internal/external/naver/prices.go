package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/wonny/themeleader/internal/contracts"
)

// History fetches daily candles for a stock from the Naver chart API
// ⭐ SSOT: 일봉 히스토리 호출은 이 함수에서만
func (c *Client) History(ctx context.Context, code string, from, to time.Time) ([]contracts.Candle, error) {
	fullURL := fmt.Sprintf(
		"%s/siseJson.naver?symbol=%s&requestType=1&startTime=%s&endTime=%s&timeframe=day",
		c.chartBaseURL, code, from.Format("20060102"), to.Format("20060102"),
	)

	body, err := c.fetch(ctx, fullURL)
	if err != nil {
		return nil, fmt.Errorf("chart request failed: %w", err)
	}

	candles, err := parseChartResponse(body)
	if err != nil {
		return nil, fmt.Errorf("parse chart response: %w", err)
	}

	c.logger.WithFields(map[string]interface{}{
		"code":  code,
		"count": len(candles),
	}).Debug("Fetched price history")
	return candles, nil
}

var trailingCommaRe = regexp.MustCompile(`,\s*\]`)

// parseChartResponse parses the quasi-JSON chart payload.
// 작은따옴표와 후행 쉼표가 섞인 형식이라 정규화 후 파싱, 실패 시 정규식 폴백
func parseChartResponse(body string) ([]contracts.Candle, error) {
	body = strings.TrimSpace(body)
	body = strings.ReplaceAll(body, "'", "\"")
	body = trailingCommaRe.ReplaceAllString(body, "]")

	var rawRows [][]interface{}
	if err := json.Unmarshal([]byte(body), &rawRows); err == nil {
		return parseChartRows(rawRows), nil
	}

	return parseChartRegex(body), nil
}

// parseChartRows converts the JSON array form, skipping the header row
func parseChartRows(rawRows [][]interface{}) []contracts.Candle {
	var candles []contracts.Candle
	for i, row := range rawRows {
		if i == 0 || len(row) < 6 {
			continue // 헤더 또는 불완전 행
		}

		dateStr, ok := row[0].(string)
		if !ok {
			continue
		}
		date, err := parseChartDate(dateStr)
		if err != nil {
			continue
		}

		candles = append(candles, contracts.Candle{
			Date:   date,
			Open:   asFloat(row[1]),
			High:   asFloat(row[2]),
			Low:    asFloat(row[3]),
			Close:  asFloat(row[4]),
			Volume: int64(asFloat(row[5])),
		})
	}
	return candles
}

// 행 뒤에 외국인소진율 등 추가 컬럼이 붙어도 앞 6개만 취한다
var chartRowRe = regexp.MustCompile(`\["(\d{8})",\s*(\d+),\s*(\d+),\s*(\d+),\s*(\d+),\s*(\d+)`)

// parseChartRegex extracts rows with a regex when JSON decoding fails
func parseChartRegex(body string) []contracts.Candle {
	var candles []contracts.Candle
	for _, match := range chartRowRe.FindAllStringSubmatch(body, -1) {
		date, err := parseChartDate(match[1])
		if err != nil {
			continue
		}

		open, _ := strconv.ParseFloat(match[2], 64)
		high, _ := strconv.ParseFloat(match[3], 64)
		low, _ := strconv.ParseFloat(match[4], 64)
		closePrice, _ := strconv.ParseFloat(match[5], 64)
		volume, _ := strconv.ParseInt(match[6], 10, 64)

		candles = append(candles, contracts.Candle{
			Date:   date,
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePrice,
			Volume: volume,
		})
	}
	return candles
}

// parseChartDate handles both "20240115" and quoted variants
func parseChartDate(s string) (time.Time, error) {
	s = strings.Trim(strings.TrimSpace(s), "\"")
	return time.Parse("20060102", s)
}

// asFloat converts chart cell values of varying JSON types
func asFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int64:
		return float64(val)
	case int:
		return float64(val)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return f
	default:
		return 0
	}
}
