// Package cmd provides the CLI commands for parkfee.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "parkfee",
	Short: "Quote parking fees and manage the admin console",
	Long: `parkfee runs the same pricing engine as the HTTP server.

Examples:
  parkfee quote --entry 2026-03-02T09:00:00Z --exit 2026-03-03T11:00:00Z
  parkfee quote --manual --hourly 2 --entry 2026-03-02T09:00:00Z --exit 2026-03-02T14:00:00Z
  PARKFEE_ADMIN_PASSWORD=... parkfee admin create --username manager01 --name "Kim" --role MANAGER`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(adminCmd)
}

func initLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
