package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/themeleader/internal/contracts"
	"github.com/wonny/themeleader/internal/inference"
	"github.com/wonny/themeleader/internal/themedict"
	"github.com/wonny/themeleader/pkg/logger"
)

// ThemeHandler serves dictionary browsing and theme inference
// ⭐ SSOT: 테마 API 핸들러는 이 구조체에서만
type ThemeHandler struct {
	dict   *themedict.Dictionary
	engine *inference.Engine
	logger *logger.Logger
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(
	dict *themedict.Dictionary,
	engine *inference.Engine,
	log *logger.Logger,
) *ThemeHandler {
	return &ThemeHandler{
		dict:   dict,
		engine: engine,
		logger: log,
	}
}

// ListThemes returns every dictionary entry
// GET /api/themes
func (h *ThemeHandler) ListThemes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"themes": h.dict.Themes(),
	})
}

// GetTheme returns one dictionary entry
// GET /api/themes/{label}
func (h *ThemeHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	label := mux.Vars(r)["label"]

	entry, ok := h.dict.Entry(label)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown theme")
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

// Infer validates a stock name and returns inferred theme labels.
// 빈 themes 배열 = 수동 선택 필요 (오류 아님)
// GET /api/infer?name=삼성전자
func (h *ThemeHandler) Infer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name := r.URL.Query().Get("name")
	if name == "" {
		respondError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	// 종목명은 상장 목록 기준 정확 일치해야 한다 (입력 검증 오류 ≠ 프로바이더 장애)
	if err := h.engine.ValidateName(ctx, name); err != nil {
		if errors.Is(err, contracts.ErrUnknownStock) {
			respondError(w, http.StatusBadRequest, "invalid input: stock name not found in listing")
			return
		}
		h.logger.WithError(err).Error("Listing unavailable for name validation")
		respondError(w, http.StatusServiceUnavailable, "listing unavailable")
		return
	}

	themes := h.engine.Infer(ctx, name)
	if themes == nil {
		themes = []string{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"name":   name,
		"themes": themes,
	})
}
