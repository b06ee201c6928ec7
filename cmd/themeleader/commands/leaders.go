package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// leadersCmd represents the leaders command
var leadersCmd = &cobra.Command{
	Use:   "leaders <테마>",
	Short: "테마 주도주 랭킹 출력",
	Long: `테마 구성 종목을 주도주 점수로 랭킹합니다.

점수 산식: 거래대금(35) + 등락률(30) + 인기검색대리(15) + 뉴스모멘텀(20)
기본 필터: 시가총액 5천억 이상

Example:
  go run ./cmd/themeleader leaders 반도체
  go run ./cmd/themeleader leaders 2차전지 --top-n 5 --min-cap 1000000000000`,
	Args: cobra.ExactArgs(1),
	RunE: runLeaders,
}

var (
	leadersMinCap int64
	leadersTopN   int
)

func init() {
	rootCmd.AddCommand(leadersCmd)

	leadersCmd.Flags().Int64Var(&leadersMinCap, "min-cap", -1, "시가총액 하한 (KRW, 기본: 설정값)")
	leadersCmd.Flags().IntVar(&leadersTopN, "top-n", 0, "출력 종목 수 (기본: 설정값)")
}

func runLeaders(cmd *cobra.Command, args []string) error {
	s, err := buildStack()
	if err != nil {
		return err
	}
	defer s.close()

	theme := args[0]
	if _, ok := s.dict.Entry(theme); !ok {
		return fmt.Errorf("unknown theme: %s", theme)
	}

	minCap := s.cfg.Scoring.MinMarketCap
	if leadersMinCap >= 0 {
		minCap = leadersMinCap
	}
	topN := s.cfg.Scoring.TopN
	if leadersTopN > 0 {
		topN = leadersTopN
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	board, err := s.scorer.ScoreTheme(ctx, theme, minCap, topN)
	if err != nil {
		return fmt.Errorf("score theme: %w", err)
	}

	if len(board.Rows) == 0 {
		fmt.Printf("조건(시총 %d 이상)을 만족하는 종목이 없습니다.\n", minCap)
		return nil
	}

	fmt.Printf("=== %s 주도주 Top %d (%s", board.Theme, topN, board.TradeDate)
	if board.Approximate {
		fmt.Print(", 일봉 근사")
	}
	fmt.Println(") ===")

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "순위\t종목\t코드\t시장\t등락률(%)\t거래대금\t시총\t인기\t뉴스\t주도점수")
	for _, row := range board.Rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t%.0f\t%d\t%.0f\t%.0f\t%.2f\n",
			row.Rank, row.Name, row.Code, row.Market,
			row.ChangePct, row.TradingValue, row.MarketCap,
			row.Popularity, row.NewsHits, row.CompositeScore,
		)
	}
	return w.Flush()
}
