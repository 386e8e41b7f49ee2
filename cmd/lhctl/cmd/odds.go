package cmd

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"ledgerholdem/internal/rules"
)

func parseAmount(flag, s string) (sdkmath.Int, error) {
	v, ok := sdkmath.NewIntFromString(s)
	if !ok || v.IsNegative() {
		return sdkmath.Int{}, fmt.Errorf("--%s: %q is not a non-negative integer", flag, s)
	}
	return v, nil
}

func newOddsCmd() *cobra.Command {
	var potStr, callStr string

	oddsCmd := &cobra.Command{
		Use:   "odds",
		Short: "Pot odds for a pending call",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pot, err := parseAmount("pot", potStr)
			if err != nil {
				return err
			}
			call, err := parseAmount("call", callStr)
			if err != nil {
				return err
			}
			pterm.Info.Printfln("pot %s, to call %s: %.2f%%", pot, call, rules.PotOdds(pot, call))
			return nil
		},
	}

	oddsCmd.Flags().StringVar(&potStr, "pot", "0", "current pot size")
	oddsCmd.Flags().StringVar(&callStr, "call", "0", "amount to call")
	return oddsCmd
}
