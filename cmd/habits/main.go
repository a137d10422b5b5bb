package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/infrastructure/cli"
)

func main() {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	ctx := context.Background()
	root := cli.NewRootCmd(cli.Options{Verbose: isVerbose()})

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	value := os.Getenv(domain.DebugEnvVar)
	return strings.EqualFold(value, "1") || strings.EqualFold(value, "true")
}
