package krx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/wonny/themeleader/pkg/httputil"
	"github.com/wonny/themeleader/pkg/logger"
)

// KRX 정보데이터시스템 JSON 게이트웨이. bld 파라미터가 조회 화면을 고른다.
const (
	jsonDataPath = "/comm/bldAttendant/getJsonData.cmd"

	bldDailyTrade = "dbms/MDC/STAT/standard/MDCSTAT01501" // 전종목 시세
	bldSectorList = "dbms/MDC/STAT/standard/MDCSTAT03901" // 업종분류 현황
)

// Client handles communication with the KRX data portal
// ⭐ SSOT: KRX 시장 데이터 호출은 이 클라이언트에서만
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// NewClient creates a new KRX client
func NewClient(httpClient *httputil.Client, log *logger.Logger, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://data.krx.co.kr"
	}
	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    baseURL,
	}
}

// fetchJSON posts a screen query and returns the raw JSON body
func (c *Client) fetchJSON(ctx context.Context, form url.Values) (string, error) {
	fullURL := c.baseURL + jsonDataPath

	resp, err := c.httpClient.PostForm(ctx, fullURL, form)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}

// parseNum parses a KRX numeric cell ("1,234,567", "-", "")
func parseNum(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || s == "-" {
		return 0
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// zeroPad normalizes a stock code to the 6-digit form
func zeroPad(code string) string {
	code = strings.TrimSpace(code)
	for len(code) < 6 {
		code = "0" + code
	}
	return code
}
