package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/internacia/dataset/cmd/internacia/commands"
	"github.com/internacia/dataset/errors"
	"github.com/internacia/dataset/logger"
)

var rootCmd = &cobra.Command{
	Use:   "internacia",
	Short: "Internacia - dataset builder for the international organizations corpus",
	Long: `Internacia - Build distributable datasets from the YAML document corpus.

The corpus holds one YAML document per country and per international bloc,
plus an auxiliary blocktypes list. The builder normalizes every document
against its category schema and exports compressed JSONL, compressed YAML,
Parquet, and a DuckDB database.

Examples:
  internacia build                      # Build every format into the output directory
  internacia build -f jsonl,parquet     # Build a subset of formats
  internacia info                       # Show corpus statistics
  internacia version                    # Show build information`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonOutput); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Emit machine-readable JSON output")

	rootCmd.AddCommand(commands.BuildCmd)
	rootCmd.AddCommand(commands.InfoCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.IsUsage(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
