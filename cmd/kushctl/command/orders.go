package command

import (
	"os"
	"os/signal"

	"kushfilms/cmd/kushctl/authentication"
	"kushfilms/cmd/kushctl/command/client"

	"github.com/spf13/cobra"
)

// ordersCmd groups order subcommands
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Follow orders",
}

// ordersWatchCmd prints order status changes as they happen.
// Admin tokens see every order, user tokens only their own.
var ordersWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream order status changes until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := authentication.GetToken()
		if err != nil {
			return err
		}
		target := apiURL
		if !cmd.Flags().Changed("api") && creds.APIURL != "" {
			target = creds.APIURL
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return client.WatchOrders(ctx, target, creds.Token, client.PrintEvent)
	},
}

func init() {
	ordersCmd.AddCommand(ordersWatchCmd)
	rootCmd.AddCommand(ordersCmd)
}
