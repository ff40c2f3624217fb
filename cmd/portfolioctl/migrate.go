package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/hafiz-aliAwj/portfolio/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := resolveDatabaseURL()
		if err != nil {
			return err
		}
		if err := database.RunMigrations(url); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Migrations complete")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Roll back migrations (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := parseSteps(args)
		if err != nil {
			return err
		}
		url, err := resolveDatabaseURL()
		if err != nil {
			return err
		}
		if err := database.RollbackMigrations(url, steps); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d migration(s)\n", steps)
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := resolveDatabaseURL()
		if err != nil {
			return err
		}
		m, err := database.NewMigrator(url)
		if err != nil {
			return err
		}
		defer func() { _, _ = m.Close() }()

		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Fprintln(cmd.OutOrStdout(), "No migrations have been applied yet")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Current version: %d\n", version)
		if dirty {
			fmt.Fprintln(cmd.OutOrStdout(), "Warning: database is in a dirty state")
		}
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(args[0])
	if err != nil || steps < 1 {
		return 0, fmt.Errorf("steps must be a positive integer, got %q", args[0])
	}
	return steps, nil
}
