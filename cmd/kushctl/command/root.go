package command

// root.go defines the root command and the global flags for kushctl.

import (
	"fmt"
	"os"

	"kushfilms/internal/config"
	"kushfilms/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var apiURL string // Global flag for API server URL

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kushctl",
	Short: "kushctl - Kush Films operator tool",
	Long: `kushctl runs and administers a Kush Films API deployment. Use it to:
- Serve the API
- Apply or roll back database migrations
- Seed the starter catalog and create admin accounts
- Log in and follow order status changes live

Use "kushctl command --help" to see the options of each command.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err) // Print error to standard error
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags = available to all subcommands
	defaultAPI := os.Getenv("KUSH_API_URL")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPI, "API server URL (env KUSH_API_URL)")
}

// loadServerConfig loads and validates the server environment for commands that touch the database.
func loadServerConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	return cfg, zl, nil
}
