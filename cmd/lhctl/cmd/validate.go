package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"ledgerholdem/internal/rules"
	"ledgerholdem/internal/state"
)

func readSnapshot(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return nil
}

func newValidateCmd() *cobra.Command {
	var (
		gamePath, playerPath string
		action, amountStr    string
	)

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a proposed action against game and player snapshots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var game state.Game
			if err := readSnapshot(gamePath, &game); err != nil {
				return err
			}
			var player state.PlayerState
			if err := readSnapshot(playerPath, &player); err != nil {
				return err
			}

			amount, err := parseAmount("amount", amountStr)
			if err != nil {
				return err
			}

			eng := rules.New(newLogger())
			if err := eng.ValidateSnapshots(&game, &player); err != nil {
				rec := state.ErrorRecordFrom(err)
				pterm.Error.Printfln("bad snapshot: %s (%s, code %d)", state.MessageOf(err), rec.Name, rec.Code)
				return nil
			}

			if game.CommunityCardsRevealed > 0 {
				pterm.Println(cardPanel("|BOARD|", game.CommunityCards))
			}
			if len(player.HoleCards) > 0 {
				pterm.Println(cardPanel("|HOLE|", player.HoleCards))
			}

			res := eng.ValidateAction(&game, &player, rules.Action(action), amount)
			if !res.Valid {
				pterm.Error.Printfln("%s rejected: %s", action, res.Error)
				return nil
			}
			pterm.Success.Printfln("%s is legal (to call: %s, min raise: %s)",
				action, rules.CallAmount(&game, &player), rules.MinimumRaise(&game))
			return nil
		},
	}

	validateCmd.Flags().StringVar(&gamePath, "game", "", "path to a Game snapshot (JSON)")
	validateCmd.Flags().StringVar(&playerPath, "player", "", "path to a PlayerState snapshot (JSON)")
	validateCmd.Flags().StringVar(&action, "action", "check", "fold|check|call|bet|raise|allIn")
	validateCmd.Flags().StringVar(&amountStr, "amount", "0", "bet or raise size")
	_ = validateCmd.MarkFlagRequired("game")
	_ = validateCmd.MarkFlagRequired("player")
	return validateCmd
}
