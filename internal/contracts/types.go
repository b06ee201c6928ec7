package contracts

import "time"

// StockInfo is one row of the tradable instrument listing
// ⭐ SSOT: 상장 목록 데이터 전달
type StockInfo struct {
	Code      string `json:"code"` // 6자리 zero-padded
	Name      string `json:"name"`
	Market    string `json:"market"` // KOSPI, KOSDAQ
	Sector    string `json:"sector"`
	Industry  string `json:"industry"`
	MarketCap int64  `json:"market_cap"` // KRW
}

// DailyQuote is one stock's daily price/value snapshot
type DailyQuote struct {
	Code         string  `json:"code"`
	ClosePrice   float64 `json:"close_price"`
	ChangePct    float64 `json:"change_pct"`
	TradingValue float64 `json:"trading_value"` // 거래대금 (KRW)
}

// MarketCap is one stock's market capitalization snapshot
type MarketCap struct {
	Code      string `json:"code"`
	MarketCap int64  `json:"market_cap"`
}

// Headline is a single news search result
type Headline struct {
	Title string `json:"title"`
	Link  string `json:"link,omitempty"`
}

// Candle is one daily OHLCV bar for charting
type Candle struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// SignalRow is one stock's joined record entering the scorer.
// close/change/value 세 값이 모두 있어야 스코어링 대상이 된다
type SignalRow struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Market       string  `json:"market"`
	ClosePrice   float64 `json:"close_price"`
	ChangePct    float64 `json:"change_pct"`
	TradingValue float64 `json:"trading_value"`
	MarketCap    int64   `json:"market_cap"` // 누락 시 0으로 간주
	Popularity   float64 `json:"popularity"` // 일반 뉴스 헤드라인 수
	NewsHits     float64 `json:"news_hits"`  // 특징주 뉴스 헤드라인 수
}

// ScoredRow is a SignalRow plus its component and composite scores.
// 각 component는 [0, weight] 범위, composite는 그 합 (최대 100)
type ScoredRow struct {
	SignalRow

	ValueScore      float64 `json:"value_score"`      // 거래대금 (x35)
	ChangeScore     float64 `json:"change_score"`     // 등락률 (x30)
	PopularityScore float64 `json:"popularity_score"` // 인기 (x15)
	NewsScore       float64 `json:"news_score"`       // 뉴스 (x20)
	CompositeScore  float64 `json:"composite_score"`  // 소수 둘째 자리 반올림
	Rank            int     `json:"rank"`             // 1-based
}

// LeaderBoard is the ranked top-N result for one theme.
// 빈 보드는 유효한 결과다 (조건을 만족하는 종목 없음)
type LeaderBoard struct {
	Theme        string      `json:"theme"`
	TradeDate    string      `json:"trade_date"` // YYYYMMDD
	MinMarketCap int64       `json:"min_market_cap"`
	Approximate  bool        `json:"approximate"` // 일봉 근사 폴백 사용 여부
	Rows         []ScoredRow `json:"rows"`
}

// ThemeEntry is one theme definition: label, member stock names and
// keyword synonyms used by the inference engine
type ThemeEntry struct {
	Label    string   `json:"label" yaml:"label"`
	Members  []string `json:"members" yaml:"members"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}
