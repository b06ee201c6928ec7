package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/themeleader/internal/api"
	"github.com/wonny/themeleader/internal/api/handlers"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

Endpoints:
  GET /health                        - Health check
  GET /api/themes                    - 테마 사전 전체
  GET /api/themes/{label}            - 테마 상세
  GET /api/infer?name=...            - 종목명 기반 테마 추정
  GET /api/leaders/{theme}           - 테마 주도주 랭킹
  GET /api/stocks/{code}/history     - 일봉 차트 데이터
  GET /api/stocks/news?name=...      - 종목 특징주 뉴스

Example:
  go run ./cmd/themeleader api
  go run ./cmd/themeleader api --port 8090`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (기본: PORT 환경변수)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	s, err := buildStack()
	if err != nil {
		return err
	}
	defer s.close()

	if apiPort != "" {
		s.cfg.Port = apiPort
	}

	themeHandler := handlers.NewThemeHandler(s.dict, s.engine, s.log)
	leaderHandler := handlers.NewLeaderHandler(s.dict, s.scorer, s.cfg.Scoring, s.log)
	stockHandler := handlers.NewStockHandler(s.history, s.news, s.cfg.Scoring, s.log)

	router := api.NewRouter(themeHandler, leaderHandler, stockHandler, s.log)
	server := api.New(s.cfg, s.log, router)

	// Graceful shutdown on SIGINT/SIGTERM
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		s.log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
