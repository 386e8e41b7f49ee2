package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"ledgerholdem/cmd/lhctl/cmd"
)

func main() {
	// Optional .env for LHCTL_* defaults; flags always win.
	_ = godotenv.Load()

	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
