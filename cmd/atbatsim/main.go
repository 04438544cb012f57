// Command atbatsim runs the at-bat simulation core either as an HTTP
// service or as a headless one-shot from the command line.
//
// Usage:
//
//	atbatsim serve --port 8081
//	atbatsim simulate --batter-ab 600 --batter-hits 192 --pitcher-so 250 --count 5000
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "atbatsim",
		Short: "At-bat probability simulation engine",
	}

	root.AddCommand(serveCmd())
	root.AddCommand(simulateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
