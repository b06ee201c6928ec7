package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// themesCmd represents the themes command
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "테마 사전 출력",
	Long: `테마 사전을 출력합니다.

THEME_FILE 환경변수로 YAML 사전을 지정하면 기본 사전을 대체합니다.`,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	s, err := buildStack()
	if err != nil {
		return err
	}
	defer s.close()

	for _, entry := range s.dict.Themes() {
		fmt.Printf("%s\n", entry.Label)
		fmt.Printf("  종목: %s\n", strings.Join(entry.Members, ", "))
		if len(entry.Keywords) > 0 {
			fmt.Printf("  키워드: %s\n", strings.Join(entry.Keywords, ", "))
		}
	}
	return nil
}
