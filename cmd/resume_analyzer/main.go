// Package main provides the entry point for the resume analyzer CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume scoring engine",
	Long:  "Resume analyzer scores resumes against job descriptions: keyword, phrase, and achievement matching plus grammar checks, served as a CLI or a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
