package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"ledgerholdem/internal/rules"
	"ledgerholdem/internal/state"
)

func newCheckConfigCmd() *cobra.Command {
	var (
		smallBlind, bigBlind, minBuyIn, maxBuyIn string
		maxPlayers                               uint8
	)

	configCmd := &cobra.Command{
		Use:   "check-config",
		Short: "Validate a proposed table configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := &state.GameConfig{MaxPlayers: maxPlayers}
			var err error
			if cfg.SmallBlind, err = parseAmount("small-blind", smallBlind); err != nil {
				return err
			}
			if cfg.BigBlind, err = parseAmount("big-blind", bigBlind); err != nil {
				return err
			}
			if cfg.MinBuyIn, err = parseAmount("min-buy-in", minBuyIn); err != nil {
				return err
			}
			if cfg.MaxBuyIn, err = parseAmount("max-buy-in", maxBuyIn); err != nil {
				return err
			}

			res := rules.New(newLogger()).ValidateGameConfig(cfg)
			if !res.Valid {
				pterm.Error.Println(res.Error)
				return nil
			}
			pterm.Success.Println("config is valid")
			return nil
		},
	}

	configCmd.Flags().StringVar(&smallBlind, "small-blind", envDefault("SMALL_BLIND", "10"), "small blind")
	configCmd.Flags().StringVar(&bigBlind, "big-blind", envDefault("BIG_BLIND", "20"), "big blind")
	configCmd.Flags().StringVar(&minBuyIn, "min-buy-in", envDefault("MIN_BUY_IN", "1000"), "minimum buy-in")
	configCmd.Flags().StringVar(&maxBuyIn, "max-buy-in", envDefault("MAX_BUY_IN", "50000"), "maximum buy-in")
	configCmd.Flags().Uint8Var(&maxPlayers, "max-players", 6, "seat count (2-6)")
	return configCmd
}
