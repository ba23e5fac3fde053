package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/hiring-coordinator/internal/config"
	"github.com/jonathan/hiring-coordinator/internal/server"
)

var (
	servePort    int
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the workflow, scheduling, collaboration and reporting endpoints, plus a background SLA watcher.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().BoolVar(&serveVerbose, "verbose", false, "Print SLA scan results to stdout")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Port = servePort
	}

	srv, err := server.New(server.Config{
		Port:            cfg.Port,
		DatabaseURL:     cfg.DatabaseURL,
		GeminiAPIKey:    cfg.GeminiAPIKey,
		GeminiModel:     cfg.GeminiModel,
		SLAScanInterval: cfg.SLAScanInterval,
		Verbose:         serveVerbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
