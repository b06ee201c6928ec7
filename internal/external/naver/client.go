package naver

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/wonny/themeleader/pkg/httputil"
	"github.com/wonny/themeleader/pkg/logger"
)

// Client handles communication with Naver search and chart endpoints
// ⭐ SSOT: Naver 호출은 이 클라이언트에서만
type Client struct {
	httpClient    *httputil.Client
	logger        *logger.Logger
	searchBaseURL string
	chartBaseURL  string
}

// NewClient creates a new Naver client
func NewClient(httpClient *httputil.Client, log *logger.Logger, searchBaseURL, chartBaseURL string) *Client {
	if searchBaseURL == "" {
		searchBaseURL = "https://search.naver.com"
	}
	if chartBaseURL == "" {
		chartBaseURL = "https://fchart.stock.naver.com"
	}
	return &Client{
		httpClient:    httpClient,
		logger:        log,
		searchBaseURL: searchBaseURL,
		chartBaseURL:  chartBaseURL,
	}
}

// fetch performs a GET and returns the body as a string
func (c *Client) fetch(ctx context.Context, fullURL string) (string, error) {
	resp, err := c.httpClient.Get(ctx, fullURL)
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
