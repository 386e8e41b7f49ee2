package rules

import (
	sdkmath "cosmossdk.io/math"

	"ledgerholdem/internal/state"
)

// Action is a betting action proposed by a player.
type Action string

const (
	ActionFold  Action = "fold"
	ActionCheck Action = "check"
	ActionCall  Action = "call"
	ActionBet   Action = "bet"
	ActionRaise Action = "raise"
	ActionAllIn Action = "allIn"
)

// ValidateAction decides the legality of one proposed action against the
// current snapshots. Amount is only consulted for bet and raise.
func ValidateAction(g *state.Game, p *state.PlayerState, action Action, amount sdkmath.Int) state.ValidationResult {
	switch action {
	case ActionFold:
		if p.HasFolded {
			return state.Invalid("player has already folded")
		}
		return state.OK()
	case ActionCheck:
		if !CanCheck(g, p) {
			return state.Invalid("cannot check while facing a bet")
		}
		return state.OK()
	case ActionCall:
		if !CanCall(g, p) {
			return state.Invalid("call is not legal when facing 0")
		}
		if CallAmount(g, p).GT(p.ChipStack) {
			return state.Invalid("insufficient chips to call")
		}
		return state.OK()
	case ActionBet:
		if !CanBet(g, p) {
			return state.Invalid("cannot bet; use raise")
		}
		return ValidateBetAmount(amount, g, p)
	case ActionRaise:
		if !CanRaise(g, p) {
			return state.Invalid("cannot raise; use bet")
		}
		return ValidateRaiseAmount(amount, g, p)
	case ActionAllIn:
		if p.IsAllIn {
			return state.Invalid("player is already all-in")
		}
		if !p.ChipStack.IsPositive() {
			return state.Invalid("no chips to move all-in")
		}
		return state.OK()
	default:
		return state.Invalid("unknown action")
	}
}
