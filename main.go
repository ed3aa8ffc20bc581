package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/hitoshi/fleetman/internal/app"
)

func main() {
	// ローカル実行用に.envを読み込む。本番では環境変数を直接使う。
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "loaded configuration from .env")
	}

	if err := app.Run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fleetman: %v\n", err)
		os.Exit(1)
	}
}
