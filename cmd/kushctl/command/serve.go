package command

import (
	"os"
	"os/signal"
	"syscall"

	"kushfilms/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, zl, err := loadServerConfig()
		if err != nil {
			return err
		}
		defer zl.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.Run(ctx, cfg, zl)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
