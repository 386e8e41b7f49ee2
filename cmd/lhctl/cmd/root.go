// Package cmd wires the lhctl command tree. lhctl is an inspection tool for
// the rules engine: it validates snapshots and proposed actions client-side,
// exactly as a wallet front end would before submitting to the ledger
// program. It performs no ledger I/O of its own.
package cmd

import (
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
)

const envPrefix = "LHCTL_"

var verbose bool

func newLogger() log.Logger {
	if !verbose {
		return log.NewNopLogger()
	}
	return log.NewLogger(os.Stderr)
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return fallback
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "lhctl",
		Short:        "Hold'em rules engine inspection tool",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log rejected validations to stderr")

	rootCmd.AddCommand(
		newDeckCmd(),
		newOddsCmd(),
		newCheckConfigCmd(),
		newValidateCmd(),
	)
	return rootCmd
}
