package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/hiring-coordinator/internal/config"
	"github.com/jonathan/hiring-coordinator/internal/observability"
	"github.com/jonathan/hiring-coordinator/internal/store"
)

var candidateCmd = &cobra.Command{
	Use:   "candidate <candidate_id>",
	Short: "Inspect a candidate's pipeline record",
	Long:  `Fetch a candidate's pipeline record from the database and print its stage history and interviews. Requires DATABASE_URL.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCandidate,
}

func init() {
	rootCmd.AddCommand(candidateCmd)
}

func runCandidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required to inspect candidates")
	}

	pg, err := store.ConnectPostgres(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pg.Close()

	rec, err := pg.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("candidate not found: %s", args[0])
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintPipelineRecord(rec)
	return nil
}
