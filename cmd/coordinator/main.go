// Package main provides the entry point for the hiring coordinator service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coordinator",
	Short: "Hiring workflow coordinator",
	Long:  "Coordinator orchestrates candidate hiring pipelines: stage transitions with SLAs, interview scheduling, collaboration threads and process reports via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
