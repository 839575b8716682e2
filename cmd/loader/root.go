package main

import (
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "loader",
	Short: "Loads Oakland campaign finance disclosures into PostgreSQL",
	Long: `loader ingests the three public disclosure feeds (Schedule A
contributions, Schedule E payments, and summary lines), resolves the parties
behind each record, and stores the normalized transactions and roll-ups.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log storage and feed operations")
	rootCmd.AddCommand(runCmd, versionCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
