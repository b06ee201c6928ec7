package main

import (
	"os"

	"github.com/wonny/themeleader/cmd/themeleader/commands"
)

// main is the entry point for the themeleader CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/themeleader [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
