package command

import (
	"kushfilms/database"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// seedCmd loads the starter categories, movies, foods and admin account
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the starter catalog",
	Long: `Seed creates the admin account, the eight default categories, three sample
movies and five sample foods. Rows that already exist are left alone, so the
command is safe to run more than once.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("admin-email")
		password, _ := cmd.Flags().GetString("admin-password")

		cfg, zl, err := loadServerConfig()
		if err != nil {
			return err
		}
		db, err := database.Connect(cfg, zl)
		if err != nil {
			return err
		}
		defer database.Close(db)

		result, err := database.Seed(cmd.Context(), db, email, password, zl)
		if err != nil {
			return err
		}

		if result.Admin {
			color.Green("✓ Admin user created: %s", email)
		} else {
			color.HiBlack("• Admin user already exists: %s", email)
		}
		color.Green("✓ Categories created: %d", result.Categories)
		color.Green("✓ Movies created: %d", result.Movies)
		color.Green("✓ Foods created: %d", result.Foods)
		return nil
	},
}

func init() {
	seedCmd.Flags().String("admin-email", "admin@kushfilms.com", "Email of the seeded admin")
	seedCmd.Flags().String("admin-password", "", "Password of the seeded admin (at least 6 characters)")
	seedCmd.MarkFlagRequired("admin-password")
	rootCmd.AddCommand(seedCmd)
}
