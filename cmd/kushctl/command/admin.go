package command

import (
	"kushfilms/database"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// adminCmd groups account administration subcommands
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin, or promote an existing user to admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		name, _ := cmd.Flags().GetString("name")

		cfg, zl, err := loadServerConfig()
		if err != nil {
			return err
		}
		db, err := database.Connect(cfg, zl)
		if err != nil {
			return err
		}
		defer database.Close(db)

		created, err := database.CreateAdmin(cmd.Context(), db, email, password, name)
		if err != nil {
			return err
		}
		if created {
			color.Green("✓ Admin created: %s", email)
		} else {
			color.Yellow("✓ Existing user %s promoted to admin", email)
		}
		return nil
	},
}

func init() {
	adminCmd.AddCommand(adminCreateCmd)
	adminCreateCmd.Flags().StringP("email", "e", "", "Email address of the admin")
	adminCreateCmd.Flags().StringP("password", "p", "", "Password for a new account (ignored when promoting)")
	adminCreateCmd.Flags().StringP("name", "n", "Admin User", "Display name for a new account")
	adminCreateCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(adminCmd)
}
