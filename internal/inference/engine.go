package inference

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/wonny/themeleader/internal/contracts"
	"github.com/wonny/themeleader/internal/themedict"
	"github.com/wonny/themeleader/pkg/logger"
)

// maxThemes caps how many inferred labels are returned
const maxThemes = 4

// Engine maps a stock name to candidate theme labels
// ⭐ SSOT: 테마 추정 로직은 여기서만
//
// 1) 사전 직접 매칭 (정확한 종목명, 정의 순서 유지) → 있으면 즉시 반환
// 2) 없으면 뉴스 헤드라인 + 상장 메타데이터(업종/산업) 키워드 빈도 합산
type Engine struct {
	dict      *themedict.Dictionary
	news      contracts.NewsSearcher
	market    contracts.MarketDataProvider
	newsLimit int
	logger    *logger.Logger
}

// New creates an inference engine. newsLimit caps the headline fetch.
func New(
	dict *themedict.Dictionary,
	news contracts.NewsSearcher,
	market contracts.MarketDataProvider,
	newsLimit int,
	log *logger.Logger,
) *Engine {
	return &Engine{
		dict:      dict,
		news:      news,
		market:    market,
		newsLimit: newsLimit,
		logger:    log,
	}
}

// Infer returns candidate theme labels, most relevant first, at most 4.
// 빈 결과는 오류가 아니다: 호출자가 수동 테마 선택으로 넘어간다
func (e *Engine) Infer(ctx context.Context, stockName string) []string {
	// Step 1: direct dictionary membership, exact string match
	if direct := e.directMatch(stockName); len(direct) > 0 {
		return direct
	}

	// Steps 2-3: keyword-frequency scoring over news + listing metadata.
	// 두 소스의 빈도는 같은 누산기에 더해진다
	scores := make(map[string]int)

	newsBlob := e.headlineBlob(ctx, stockName)
	metaBlob := e.metadataBlob(ctx, stockName)

	for _, entry := range e.dict.Themes() {
		total := 0
		for _, kw := range append([]string{entry.Label}, entry.Keywords...) {
			total += countOccurrences(newsBlob, kw)
			total += countOccurrences(metaBlob, kw)
		}
		if total > 0 {
			scores[entry.Label] = total
		}
	}

	if len(scores) == 0 {
		return nil
	}

	// Step 4: sort by accumulated score, definition order on ties
	ranked := make([]string, 0, len(scores))
	for _, label := range e.dict.Labels() {
		if _, ok := scores[label]; ok {
			ranked = append(ranked, label)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	if len(ranked) > maxThemes {
		ranked = ranked[:maxThemes]
	}

	e.logger.WithFields(map[string]interface{}{
		"stock_name": stockName,
		"themes":     ranked,
	}).Debug("Inferred themes from keywords")

	return ranked
}

// ValidateName checks that the stock name resolves against the listing.
// ErrUnknownStock = 입력 오류, 그 외 = 프로바이더 장애
func (e *Engine) ValidateName(ctx context.Context, stockName string) error {
	listing, err := e.market.Listing(ctx)
	if err != nil {
		return fmt.Errorf("listing unavailable: %w", err)
	}

	for _, info := range listing {
		if info.Name == stockName {
			return nil
		}
	}
	return contracts.ErrUnknownStock
}

// directMatch scans every theme's member list for the exact name
func (e *Engine) directMatch(stockName string) []string {
	var found []string
	for _, entry := range e.dict.Themes() {
		for _, member := range entry.Members {
			if member == stockName {
				found = append(found, entry.Label)
				break
			}
		}
	}
	return found
}

// headlineBlob joins recent headline titles for the stock name.
// 검색 실패는 빈 텍스트로 흡수
func (e *Engine) headlineBlob(ctx context.Context, stockName string) string {
	headlines, err := e.news.Search(ctx, stockName, e.newsLimit)
	if err != nil {
		e.logger.WithError(err).WithField("stock_name", stockName).Debug("Headline fetch degraded to empty")
		return ""
	}

	titles := make([]string, 0, len(headlines))
	for _, h := range headlines {
		titles = append(titles, h.Title)
	}
	return strings.Join(titles, " ")
}

// metadataBlob joins the stock's sector and industry fields from the listing.
// 목록에 없거나 조회 실패면 빈 텍스트
func (e *Engine) metadataBlob(ctx context.Context, stockName string) string {
	listing, err := e.market.Listing(ctx)
	if err != nil {
		e.logger.WithError(err).Debug("Listing fetch degraded to empty metadata")
		return ""
	}

	for _, info := range listing {
		if info.Name == stockName {
			return strings.TrimSpace(info.Sector + " " + info.Industry)
		}
	}
	return ""
}

// countOccurrences counts case-insensitive substring occurrences
func countOccurrences(text, keyword string) int {
	if text == "" || keyword == "" {
		return 0
	}
	return strings.Count(strings.ToLower(text), strings.ToLower(keyword))
}
