package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/server"
)

var (
	servePort         int
	serveSkillsFile   string
	serveSynonymsFile string
	serveHistoryLimit int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing resume analysis, history, and auth endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().StringVar(&serveSkillsFile, "skills", "", "Path to skills.json (built-in list when empty)")
	serveCmd.Flags().StringVar(&serveSynonymsFile, "synonyms", "", "Path to synonyms.json (built-in table when empty)")
	serveCmd.Flags().IntVar(&serveHistoryLimit, "history-limit", config.DefaultHistoryLimit, "Records returned by the history endpoint")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	srv, err := server.New(server.Config{
		Port:         servePort,
		DatabaseURL:  databaseURL,
		SkillsFile:   serveSkillsFile,
		SynonymsFile: serveSynonymsFile,
		HistoryLimit: serveHistoryLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
