package command

import (
	"fmt"

	"kushfilms/database"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// migrateCmd groups schema migration subcommands
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, zl, err := loadServerConfig()
		if err != nil {
			return err
		}
		db, err := database.Open(cfg)
		if err != nil {
			return err
		}
		defer database.Close(db)

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := database.MigrateUp(sqlDB, zl); err != nil {
			return err
		}
		color.Green("✓ Migrations applied")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, _ := cmd.Flags().GetInt("steps")
		cfg, zl, err := loadServerConfig()
		if err != nil {
			return err
		}
		db, err := database.Open(cfg)
		if err != nil {
			return err
		}
		defer database.Close(db)

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := database.MigrateDown(sqlDB, steps, zl); err != nil {
			return err
		}
		color.Yellow("✓ Rolled back %s", pluralize(steps, "migration"))
		return nil
	},
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateDownCmd.Flags().Int("steps", 1, "Number of migrations to roll back")
	rootCmd.AddCommand(migrateCmd)
}
