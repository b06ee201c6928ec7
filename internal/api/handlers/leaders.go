package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wonny/themeleader/internal/scoring"
	"github.com/wonny/themeleader/internal/themedict"
	"github.com/wonny/themeleader/pkg/config"
	"github.com/wonny/themeleader/pkg/logger"
)

// LeaderHandler serves the theme leadership board
// ⭐ SSOT: 주도주 API 핸들러는 이 구조체에서만
type LeaderHandler struct {
	dict     *themedict.Dictionary
	scorer   *scoring.Scorer
	defaults config.ScoringConfig
	logger   *logger.Logger
}

// NewLeaderHandler creates a new leader handler
func NewLeaderHandler(
	dict *themedict.Dictionary,
	scorer *scoring.Scorer,
	defaults config.ScoringConfig,
	log *logger.Logger,
) *LeaderHandler {
	return &LeaderHandler{
		dict:     dict,
		scorer:   scorer,
		defaults: defaults,
		logger:   log,
	}
}

// GetLeaders scores a theme and returns its ranked board.
// 빈 rows = 조건(시총 필터)을 만족하는 종목 없음, 200으로 응답
// GET /api/leaders/{theme}?min_cap=500000000000&top_n=10
func (h *LeaderHandler) GetLeaders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	theme := mux.Vars(r)["theme"]

	if _, ok := h.dict.Entry(theme); !ok {
		respondError(w, http.StatusNotFound, "unknown theme")
		return
	}

	minCap := h.defaults.MinMarketCap
	if raw := r.URL.Query().Get("min_cap"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			respondError(w, http.StatusBadRequest, "min_cap must be a non-negative integer")
			return
		}
		minCap = v
	}

	topN := h.defaults.TopN
	if raw := r.URL.Query().Get("top_n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			respondError(w, http.StatusBadRequest, "top_n must be a positive integer")
			return
		}
		topN = v
	}

	board, err := h.scorer.ScoreTheme(ctx, theme, minCap, topN)
	if err != nil {
		h.logger.WithError(err).WithField("theme", theme).Error("Scoring failed")
		respondError(w, http.StatusInternalServerError, "scoring failed")
		return
	}

	respondJSON(w, http.StatusOK, board)
}
