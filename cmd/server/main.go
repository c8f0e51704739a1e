package main

import (
	"fmt"
	"os"

	"github.com/grievance-portal/grievance-api/internal/config"
	"github.com/grievance-portal/grievance-api/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:          "grievance-api",
	Short:        "Grievance portal API",
	Long:         `REST backend for filing, tracking and resolving grievances.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads .env and the environment, validates the result and builds
// the logger. A missing .env file is not an error.
func bootstrap() (*config.Config, *zap.SugaredLogger, error) {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		return nil, log, err
	}
	return cfg, log, nil
}
