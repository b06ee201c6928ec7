package naver

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/wonny/themeleader/internal/contracts"
)

// Search returns recent news headlines for a query, relevance order
// ⭐ SSOT: 뉴스 검색 호출은 이 함수에서만
func (c *Client) Search(ctx context.Context, query string, limit int) ([]contracts.Headline, error) {
	fullURL := fmt.Sprintf(
		"%s/search.naver?where=news&query=%s",
		c.searchBaseURL, url.QueryEscape(query),
	)

	body, err := c.fetch(ctx, fullURL)
	if err != nil {
		return nil, fmt.Errorf("news search failed: %w", err)
	}

	headlines, err := parseNewsHTML(body, limit)
	if err != nil {
		return nil, fmt.Errorf("parse news page: %w", err)
	}

	c.logger.WithFields(map[string]interface{}{
		"query": query,
		"count": len(headlines),
	}).Debug("Fetched news headlines")
	return headlines, nil
}

// parseNewsHTML extracts headline anchors from the search result page.
// 제목은 title 속성 우선, 없으면 앵커 텍스트
func parseNewsHTML(html string, limit int) ([]contracts.Headline, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var headlines []contracts.Headline
	doc.Find("a.news_tit").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if limit > 0 && len(headlines) >= limit {
			return false
		}

		title, ok := sel.Attr("title")
		if !ok || strings.TrimSpace(title) == "" {
			title = strings.TrimSpace(sel.Text())
		}
		if title == "" {
			return true
		}

		link, _ := sel.Attr("href")
		headlines = append(headlines, contracts.Headline{
			Title: title,
			Link:  link,
		})
		return true
	})

	return headlines, nil
}
