package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "themeleader",
	Short: "테마 주도주 탐색기",
	Long: `Theme Leader Explorer

종목명으로 관련 테마를 추정하고, 거래대금/등락률/인기/뉴스를 결합해
테마 구성 종목을 주도주 점수로 랭킹한다.

Usage:
  go run ./cmd/themeleader [command]

Examples:
  go run ./cmd/themeleader api
  go run ./cmd/themeleader infer 삼성전자
  go run ./cmd/themeleader leaders 반도체 --top-n 10
  go run ./cmd/themeleader themes`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
