package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/hiring-coordinator/internal/observability"
	"github.com/jonathan/hiring-coordinator/internal/stage"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "Print the hiring pipeline stages",
	Long:  `Print the ordered pipeline stages with their SLAs, default owners and interview rounds.`,
	Run:   runStages,
}

func init() {
	rootCmd.AddCommand(stagesCmd)
}

func runStages(_ *cobra.Command, _ []string) {
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintStageGraph(stage.Default())
}
