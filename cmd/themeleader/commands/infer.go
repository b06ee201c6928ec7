package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// inferCmd represents the infer command
var inferCmd = &cobra.Command{
	Use:   "infer <종목명>",
	Short: "종목명으로 관련 테마 추정",
	Long: `종목명으로 관련 테마를 추정합니다.

사전에 직접 등록된 종목이면 해당 테마를, 아니면 뉴스 헤드라인과
업종 메타데이터의 키워드 빈도로 상위 테마를 돌려줍니다.

Example:
  go run ./cmd/themeleader infer 삼성전자`,
	Args: cobra.ExactArgs(1),
	RunE: runInfer,
}

func init() {
	rootCmd.AddCommand(inferCmd)
}

func runInfer(cmd *cobra.Command, args []string) error {
	s, err := buildStack()
	if err != nil {
		return err
	}
	defer s.close()

	name := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	themes := s.engine.Infer(ctx, name)
	if len(themes) == 0 {
		fmt.Printf("%s: 테마를 추정하지 못했습니다. 아래에서 직접 선택하세요:\n", name)
		for _, label := range s.dict.Labels() {
			fmt.Printf("  - %s\n", label)
		}
		return nil
	}

	fmt.Printf("%s 관련 테마:\n", name)
	for i, label := range themes {
		fmt.Printf("  %d. %s\n", i+1, label)
	}
	return nil
}
