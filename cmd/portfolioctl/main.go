package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hafiz-aliAwj/portfolio/internal/config"
	"github.com/hafiz-aliAwj/portfolio/internal/database"
	"github.com/hafiz-aliAwj/portfolio/internal/logger"
	"github.com/spf13/cobra"
)

var (
	databaseURL string
	logLevel    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "portfolioctl",
	Short: "Administer the portfolio backend",
	Long: `portfolioctl manages the portfolio database: schema migrations,
admin accounts and bulk content seeding.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetupDefault(os.Stderr, logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "PostgreSQL URL (default $DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func resolveDatabaseURL() (string, error) {
	if databaseURL != "" {
		return databaseURL, nil
	}
	if url := config.DatabaseURL(); url != "" {
		return url, nil
	}
	return "", errors.New("DATABASE_URL environment variable or --database-url flag is required")
}

// connect opens a pool for commands that read or write rows.
func connect(ctx context.Context) (*database.DB, error) {
	url, err := resolveDatabaseURL()
	if err != nil {
		return nil, err
	}

	db, err := database.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	slog.Debug("connected to database")
	return db, nil
}
