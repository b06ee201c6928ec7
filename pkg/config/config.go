package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Redis
	Redis RedisConfig

	// External sources
	KRX   KRXConfig
	Naver NaverConfig

	// Scoring defaults
	Scoring ScoringConfig

	// Theme dictionary override file (optional)
	ThemeFile string

	// Logging
	LogLevel  string
	LogFormat string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// KRXConfig holds KRX (한국거래소 정보데이터시스템) configuration
type KRXConfig struct {
	BaseURL string
}

// NaverConfig holds Naver search/chart configuration
type NaverConfig struct {
	SearchBaseURL string
	ChartBaseURL  string
}

// ScoringConfig holds leadership scoring defaults
// 기준값: 시총 5천억 필터, Top 10
type ScoringConfig struct {
	MinMarketCap    int64 // KRW
	TopN            int
	InferNewsLimit  int // 테마 추정용 헤드라인 수
	SignalNewsLimit int // 인기/뉴스 시그널용 헤드라인 수
	RecentNewsLimit int // 종목 뉴스 표시용
	HistoryDays     int // 차트 기본 조회 일수
	ProbeDays       int // 최근 거래일 역방향 탐색 한도
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),

		// Redis
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		},

		// External sources
		KRX: KRXConfig{
			BaseURL: getEnv("KRX_BASE_URL", "http://data.krx.co.kr"),
		},
		Naver: NaverConfig{
			SearchBaseURL: getEnv("NAVER_SEARCH_BASE_URL", "https://search.naver.com"),
			ChartBaseURL:  getEnv("NAVER_CHART_BASE_URL", "https://fchart.stock.naver.com"),
		},

		// Scoring defaults
		Scoring: ScoringConfig{
			MinMarketCap:    getEnvAsInt64("SCORING_MIN_MARKET_CAP", 500_000_000_000),
			TopN:            getEnvAsInt("SCORING_TOP_N", 10),
			InferNewsLimit:  getEnvAsInt("SCORING_INFER_NEWS_LIMIT", 30),
			SignalNewsLimit: getEnvAsInt("SCORING_SIGNAL_NEWS_LIMIT", 20),
			RecentNewsLimit: getEnvAsInt("SCORING_RECENT_NEWS_LIMIT", 12),
			HistoryDays:     getEnvAsInt("SCORING_HISTORY_DAYS", 120),
			ProbeDays:       getEnvAsInt("SCORING_PROBE_DAYS", 7),
		},

		ThemeFile: getEnv("THEME_FILE", ""),

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Scoring.TopN <= 0 {
		return fmt.Errorf("SCORING_TOP_N must be positive")
	}
	if c.Scoring.MinMarketCap < 0 {
		return fmt.Errorf("SCORING_MIN_MARKET_CAP must not be negative")
	}
	if c.Scoring.ProbeDays <= 0 {
		return fmt.Errorf("SCORING_PROBE_DAYS must be positive")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env", // Current directory
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
