package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/hiring-coordinator/internal/config"
	"github.com/jonathan/hiring-coordinator/internal/server"
)

var tokenService string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a service token for the REST API",
	Long:  `Mint a bearer token for a calling service. Requires JWT_SECRET in the environment.`,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenService, "service", "", "Name of the calling service (required)")
	_ = tokenCmd.MarkFlagRequired("service")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return err
	}

	token, err := server.NewJWTService(jwtConfig).GenerateToken(tokenService)
	if err != nil {
		return fmt.Errorf("failed to mint token: %w", err)
	}

	cmd.Println(token)
	return nil
}
