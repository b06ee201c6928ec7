package commands

import (
	"fmt"

	"github.com/wonny/themeleader/internal/contracts"
	"github.com/wonny/themeleader/internal/external/krx"
	"github.com/wonny/themeleader/internal/external/naver"
	"github.com/wonny/themeleader/internal/inference"
	"github.com/wonny/themeleader/internal/providers"
	"github.com/wonny/themeleader/internal/scoring"
	"github.com/wonny/themeleader/internal/signals"
	"github.com/wonny/themeleader/internal/themedict"
	"github.com/wonny/themeleader/pkg/config"
	"github.com/wonny/themeleader/pkg/httputil"
	"github.com/wonny/themeleader/pkg/logger"
	"github.com/wonny/themeleader/pkg/redis"
)

// stack bundles the wired application components for commands
// ⭐ SSOT: 의존성 조립은 이 파일에서만
type stack struct {
	cfg  *config.Config
	log  *logger.Logger
	dict *themedict.Dictionary

	market  contracts.MarketDataProvider
	news    contracts.NewsSearcher
	history contracts.PriceHistoryProvider

	engine *inference.Engine
	scorer *scoring.Scorer

	redisClient *redis.Client
}

// buildStack loads config and wires providers, cache and the core engines
func buildStack() (*stack, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	dict, err := themedict.LoadFileOrDefault(cfg.ThemeFile)
	if err != nil {
		return nil, fmt.Errorf("load theme dictionary: %w", err)
	}

	// Redis는 선택 사항: 연결 실패 시 캐시 없이 진행
	redisClient, err := redis.New(cfg)
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, proceeding without cache")
		redisClient, _ = redis.New(&config.Config{Redis: config.RedisConfig{Enabled: false}})
	}

	var cache contracts.Cache = contracts.NopCache{}
	if redisClient.Enabled() {
		cache = redis.NewCache(redisClient, "themeleader")
	}

	// 소스별 HTTP 클라이언트: 헤더/호출 제한 분리
	krxHTTP := httputil.New(cfg, log).
		WithHeader("Referer", cfg.KRX.BaseURL).
		WithLocalRateLimit(2)
	naverHTTP := httputil.New(cfg, log).
		WithHeader("Referer", "https://finance.naver.com/").
		WithLocalRateLimit(5)

	if redisClient.Enabled() {
		limiter := redis.NewRateLimiter(redisClient, "themeleader")
		krxHTTP = krxHTTP.WithRateLimiter(limiter, redis.KRXRateLimit)
		naverHTTP = naverHTTP.WithRateLimiter(limiter, redis.NaverRateLimit)
	}

	krxClient := krx.NewClient(krxHTTP, log, cfg.KRX.BaseURL)
	naverClient := naver.NewClient(naverHTTP, log, cfg.Naver.SearchBaseURL, cfg.Naver.ChartBaseURL)

	// TTL 캐시 데코레이터: 코어는 캐시를 모른다
	market := providers.NewCachedMarketData(krxClient, cache, log)
	news := providers.NewCachedNews(naverClient, cache, log)
	history := providers.NewCachedHistory(naverClient, cache, log)

	counter := signals.NewCounter(news, cfg.Scoring.SignalNewsLimit, log)
	engine := inference.New(dict, news, market, cfg.Scoring.InferNewsLimit, log)
	scorer := scoring.NewScorer(dict, market, history, counter, cfg.Scoring.ProbeDays, log)

	return &stack{
		cfg:         cfg,
		log:         log,
		dict:        dict,
		market:      market,
		news:        news,
		history:     history,
		engine:      engine,
		scorer:      scorer,
		redisClient: redisClient,
	}, nil
}

// close releases held connections
func (s *stack) close() {
	if s.redisClient != nil {
		_ = s.redisClient.Close()
	}
}
