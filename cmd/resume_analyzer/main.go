// Package main provides the entry point for the resume analyzer CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume matching and scoring engine",
	Long:  "Resume Analyzer scores resumes against job descriptions using keyword coverage and semantic similarity, and produces AI-written improvement feedback.",
}

var (
	flagJSONLog bool
	flagDebug   bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSONLog, "json-log", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
