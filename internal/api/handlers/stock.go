package handlers

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/wonny/themeleader/internal/contracts"
	"github.com/wonny/themeleader/pkg/config"
	"github.com/wonny/themeleader/pkg/logger"
)

var stockCodeRe = regexp.MustCompile(`^\d{6}$`)

// StockHandler serves per-stock chart data and recent news
// ⭐ SSOT: 종목 API 핸들러는 이 구조체에서만
type StockHandler struct {
	history  contracts.PriceHistoryProvider
	news     contracts.NewsSearcher
	defaults config.ScoringConfig
	logger   *logger.Logger
}

// NewStockHandler creates a new stock handler
func NewStockHandler(
	history contracts.PriceHistoryProvider,
	news contracts.NewsSearcher,
	defaults config.ScoringConfig,
	log *logger.Logger,
) *StockHandler {
	return &StockHandler{
		history:  history,
		news:     news,
		defaults: defaults,
		logger:   log,
	}
}

// GetHistory returns daily candles for charting
// GET /api/stocks/{code}/history?days=120
func (h *StockHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := mux.Vars(r)["code"]

	if !stockCodeRe.MatchString(code) {
		respondError(w, http.StatusBadRequest, "code must be a 6-digit stock code")
		return
	}

	days := h.defaults.HistoryDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			respondError(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = v
	}

	to := time.Now()
	from := to.AddDate(0, 0, -days)

	candles, err := h.history.History(ctx, code, from, to)
	if err != nil {
		h.logger.WithError(err).WithField("code", code).Error("History fetch failed")
		respondError(w, http.StatusBadGateway, "price history unavailable")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"code":    code,
		"candles": candles,
	})
}

// GetNews returns recent breakout-flavored headlines for a stock name.
// 수집 실패는 빈 목록으로 응답 (표시 계층에서 안내)
// GET /api/stocks/news?name=삼성전자
func (h *StockHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name := r.URL.Query().Get("name")
	if name == "" {
		respondError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	query := fmt.Sprintf("%s 특징주", name)
	headlines, err := h.news.Search(ctx, query, h.defaults.RecentNewsLimit)
	if err != nil {
		h.logger.WithError(err).WithField("name", name).Warn("News fetch failed, responding empty")
		headlines = []contracts.Headline{}
	}
	if headlines == nil {
		headlines = []contracts.Headline{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"name":      name,
		"headlines": headlines,
	})
}
