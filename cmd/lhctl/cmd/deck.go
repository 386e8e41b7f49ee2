package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"ledgerholdem/internal/cards"
)

func newDeckCmd() *cobra.Command {
	var (
		seed string
		deal int
	)

	deckCmd := &cobra.Command{
		Use:   "deck",
		Short: "Create, shuffle and deal a demo deck",
		Long: "Creates a canonical 52-card deck, shuffles it, and optionally deals. " +
			"The shuffle is display-only; live games are dealt by the external MPC layer.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deck := cards.NewDeck()

			var shuffled []cards.Card
			if seed != "" {
				shuffled = cards.ShuffleSeeded(deck, []byte(seed))
			} else {
				shuffled = cards.Shuffle(deck)
			}

			if deal <= 0 {
				pterm.Println(cardPanel("|DECK|", shuffled))
				return nil
			}

			dealt, remaining, err := cards.Deal(shuffled, deal)
			if err != nil {
				return err
			}
			pterm.Println(cardPanel("|DEALT|", dealt))
			pterm.Info.Printfln("%d cards remain", len(remaining))
			return nil
		},
	}

	deckCmd.Flags().StringVar(&seed, "seed", envDefault("SEED", ""), "deterministic shuffle seed (random if empty)")
	deckCmd.Flags().IntVar(&deal, "deal", 0, "deal this many cards off the top")
	return deckCmd
}
