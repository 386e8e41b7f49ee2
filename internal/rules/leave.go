package rules

import (
	sdkmath "cosmossdk.io/math"

	"ledgerholdem/internal/state"
)

// ValidateLeave checks whether a player may leave and be refunded: only
// before the game starts, and only with chips to withdraw.
func ValidateLeave(g *state.Game, p *state.PlayerState) state.ValidationResult {
	if g.Stage != state.StageWaiting {
		return state.Invalid("game has already started")
	}
	if !p.ChipStack.IsPositive() {
		return state.Invalid("player has no chips to withdraw")
	}
	return state.OK()
}

// RefundAmount is the full stack; leaving before the game starts returns
// everything.
func RefundAmount(p *state.PlayerState) sdkmath.Int {
	return p.ChipStack
}

// PlayerHasLeft reports whether the player's stack has been withdrawn.
func PlayerHasLeft(p *state.PlayerState) bool {
	return p.ChipStack.IsZero()
}
