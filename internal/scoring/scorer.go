package scoring

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/wonny/themeleader/internal/contracts"
	"github.com/wonny/themeleader/internal/signals"
	"github.com/wonny/themeleader/internal/themedict"
	"github.com/wonny/themeleader/pkg/logger"
)

// Signal weights. 거래대금/등락률이 객관적 모멘텀(65), 인기/뉴스는
// 같은 검색 카운트에서 나온 소프트 시그널(35). 합 100 고정.
const (
	WeightTradingValue = 35.0
	WeightChangePct    = 30.0
	WeightPopularity   = 15.0
	WeightNewsHits     = 20.0
)

const dateFormat = "20060102"

// Scorer assembles, filters, normalizes and ranks a theme's members
// ⭐ SSOT: 주도주 스코어링은 여기서만
type Scorer struct {
	dict      *themedict.Dictionary
	market    contracts.MarketDataProvider
	history   contracts.PriceHistoryProvider
	counter   *signals.Counter
	probeDays int
	logger    *logger.Logger

	now func() time.Time
}

// NewScorer creates a leadership scorer.
// probeDays bounds the backward trading-date probe.
func NewScorer(
	dict *themedict.Dictionary,
	market contracts.MarketDataProvider,
	history contracts.PriceHistoryProvider,
	counter *signals.Counter,
	probeDays int,
	log *logger.Logger,
) *Scorer {
	return &Scorer{
		dict:      dict,
		market:    market,
		history:   history,
		counter:   counter,
		probeDays: probeDays,
		logger:    log,
		now:       time.Now,
	}
}

// ScoreTheme ranks a theme's constituents by composite leadership score.
// 빈 보드는 유효한 결과다: 멤버 해석 실패 또는 시총 필터 전멸
func (s *Scorer) ScoreTheme(ctx context.Context, theme string, minMarketCap int64, topN int) (*contracts.LeaderBoard, error) {
	board := &contracts.LeaderBoard{
		Theme:        theme,
		MinMarketCap: minMarketCap,
		Rows:         []contracts.ScoredRow{},
	}

	members := s.dict.Members(theme)
	if len(members) == 0 {
		return board, nil
	}

	// Step 1: resolve member names against the listing.
	// 코드가 없는 이름은 조용히 제외 (사전-상장 불일치는 정상)
	listing, err := s.market.Listing(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Listing unavailable, returning empty board")
		return board, nil
	}

	infoByName := make(map[string]contracts.StockInfo, len(listing))
	for _, info := range listing {
		infoByName[info.Name] = info
	}

	resolved := make([]contracts.StockInfo, 0, len(members))
	for _, name := range members {
		info, ok := infoByName[name]
		if !ok {
			s.logger.WithField("name", name).Debug("Member not in listing, dropped")
			continue
		}
		resolved = append(resolved, info)
	}
	if len(resolved) == 0 {
		return board, nil
	}

	// Step 2: join the latest daily snapshot and market caps
	date := s.latestTradingDate(ctx)
	board.TradeDate = date

	quotes := s.fetchSnapshot(ctx, date)
	caps := s.fetchMarketCaps(ctx, date)

	rows := make([]contracts.SignalRow, 0, len(resolved))
	if len(quotes) > 0 {
		for _, info := range resolved {
			quote, ok := quotes[info.Code]
			if !ok {
				// Step 3: 시세 누락 행은 0으로 채우지 않고 제외
				continue
			}
			rows = append(rows, contracts.SignalRow{
				Code:         info.Code,
				Name:         info.Name,
				Market:       info.Market,
				ClosePrice:   quote.ClosePrice,
				ChangePct:    quote.ChangePct,
				TradingValue: quote.TradingValue,
				MarketCap:    caps[info.Code], // 누락 시 0
			})
		}
	} else {
		// 스냅샷 전체 실패: 일봉 2개로 근사 (명시적 정밀도 저하)
		board.Approximate = true
		rows = s.approximateRows(ctx, resolved, caps)
	}

	// Step 4: market-cap floor
	qualified := rows[:0]
	for _, row := range rows {
		if row.MarketCap >= minMarketCap {
			qualified = append(qualified, row)
		}
	}
	if len(qualified) == 0 {
		return board, nil
	}

	// Step 5: search-count signals, sequential per stock.
	// 실패는 0건으로 흡수되고 이 호출 안에서 재시도하지 않는다
	for i := range qualified {
		qualified[i].Popularity = float64(s.counter.Popularity(ctx, qualified[i].Name).Count)
		qualified[i].NewsHits = float64(s.counter.NewsHits(ctx, qualified[i].Name).Count)
	}

	// Steps 6-7: normalize, weight, rank
	board.Rows = rank(qualified, topN)

	s.logger.WithFields(map[string]interface{}{
		"theme":       theme,
		"trade_date":  date,
		"candidates":  len(resolved),
		"qualified":   len(qualified),
		"returned":    len(board.Rows),
		"approximate": board.Approximate,
	}).Info("Theme scored")

	return board, nil
}

// rank computes component and composite scores and returns the top-N rows
func rank(rows []contracts.SignalRow, topN int) []contracts.ScoredRow {
	n := len(rows)
	values := make([]float64, n)
	changes := make([]float64, n)
	pops := make([]float64, n)
	hits := make([]float64, n)
	for i, r := range rows {
		values[i] = r.TradingValue
		changes[i] = r.ChangePct
		pops[i] = r.Popularity
		hits[i] = r.NewsHits
	}

	values = Normalize(values)
	changes = Normalize(changes)
	pops = Normalize(pops)
	hits = Normalize(hits)

	scored := make([]contracts.ScoredRow, n)
	for i, r := range rows {
		sr := contracts.ScoredRow{
			SignalRow:       r,
			ValueScore:      values[i] * WeightTradingValue,
			ChangeScore:     changes[i] * WeightChangePct,
			PopularityScore: pops[i] * WeightPopularity,
			NewsScore:       hits[i] * WeightNewsHits,
		}
		sr.CompositeScore = round2(sr.ValueScore + sr.ChangeScore + sr.PopularityScore + sr.NewsScore)
		scored[i] = sr
	}

	// 동점은 조인 순서(멤버 정의 순서) 유지: 2차 정렬 키 없음
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].CompositeScore > scored[j].CompositeScore
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored
}

// latestTradingDate probes backward for the most recent date with data.
// probeDays 안에 없으면 오늘 날짜 문자열로 폴백 (호출부가 빈 데이터 흡수)
func (s *Scorer) latestTradingDate(ctx context.Context) string {
	today := s.now()
	for i := 0; i < s.probeDays; i++ {
		date := today.AddDate(0, 0, -i).Format(dateFormat)
		snap, err := s.market.DailySnapshot(ctx, date)
		if err == nil && len(snap) > 0 {
			return date
		}
	}
	return today.Format(dateFormat)
}

func (s *Scorer) fetchSnapshot(ctx context.Context, date string) map[string]contracts.DailyQuote {
	snap, err := s.market.DailySnapshot(ctx, date)
	if err != nil {
		s.logger.WithError(err).WithField("date", date).Warn("Daily snapshot unavailable")
		return nil
	}

	quotes := make(map[string]contracts.DailyQuote, len(snap))
	for _, q := range snap {
		quotes[q.Code] = q
	}
	return quotes
}

func (s *Scorer) fetchMarketCaps(ctx context.Context, date string) map[string]int64 {
	mcs, err := s.market.MarketCapSnapshot(ctx, date)
	if err != nil {
		s.logger.WithError(err).WithField("date", date).Warn("Market cap snapshot unavailable")
		return nil
	}

	caps := make(map[string]int64, len(mcs))
	for _, mc := range mcs {
		caps[mc.Code] = mc.MarketCap
	}
	return caps
}

// approximateRows derives change/value from the last two daily candles.
// change = (last/prev - 1) * 100, value ≈ last volume * last close
func (s *Scorer) approximateRows(ctx context.Context, resolved []contracts.StockInfo, caps map[string]int64) []contracts.SignalRow {
	to := s.now()
	from := to.AddDate(0, 0, -14) // 휴장 감안 여유폭

	rows := make([]contracts.SignalRow, 0, len(resolved))
	for _, info := range resolved {
		candles, err := s.history.History(ctx, info.Code, from, to)
		if err != nil || len(candles) < 2 {
			s.logger.WithField("code", info.Code).Debug("History approximation unavailable, row dropped")
			continue
		}

		last := candles[len(candles)-1]
		prev := candles[len(candles)-2]
		if prev.Close == 0 {
			continue
		}

		rows = append(rows, contracts.SignalRow{
			Code:         info.Code,
			Name:         info.Name,
			Market:       info.Market,
			ClosePrice:   last.Close,
			ChangePct:    (last.Close/prev.Close - 1) * 100,
			TradingValue: float64(last.Volume) * last.Close,
			MarketCap:    caps[info.Code],
		})
	}
	return rows
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
