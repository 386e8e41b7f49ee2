// Package rules is the decision core: pure, synchronous functions over
// immutable Game/PlayerState snapshots. Nothing here performs I/O or mutates
// its inputs; identical inputs always produce identical results. The caller
// re-snapshots before each decision and submits the outcome to the ledger
// program, which re-runs equivalent checks and is the true serialization
// point.
package rules

import (
	sdkmath "cosmossdk.io/math"

	"ledgerholdem/internal/state"
)

// CanCheck reports whether the player owes nothing this round.
func CanCheck(g *state.Game, p *state.PlayerState) bool {
	return g.CurrentBet.Equal(p.CurrentBet)
}

// CanCall reports whether a call is a legal action: a positive amount is owed
// and the player holds at least one chip. A short player may still call; the
// settled amount is capped by the stack at settlement time, not here.
func CanCall(g *state.Game, p *state.PlayerState) bool {
	return g.CurrentBet.GT(p.CurrentBet) && p.ChipStack.IsPositive()
}

// CanBet reports whether opening a bet is legal this round.
func CanBet(g *state.Game, p *state.PlayerState) bool {
	return g.CurrentBet.IsZero() && p.ChipStack.IsPositive()
}

// CanRaise reports whether the player faces a live bet and holds strictly
// more than the amount needed to call.
func CanRaise(g *state.Game, p *state.PlayerState) bool {
	return g.CurrentBet.IsPositive() && p.ChipStack.GT(CallAmount(g, p))
}

// CallAmount is the amount owed to match the current bet, never negative.
func CallAmount(g *state.Game, p *state.PlayerState) sdkmath.Int {
	if g.CurrentBet.LTE(p.CurrentBet) {
		return sdkmath.ZeroInt()
	}
	return g.CurrentBet.Sub(p.CurrentBet)
}

// MinimumRaise is twice the current bet, or the big blind when no bet is
// open.
func MinimumRaise(g *state.Game) sdkmath.Int {
	if g.CurrentBet.IsPositive() {
		return g.CurrentBet.MulRaw(2)
	}
	return g.BigBlind
}

// PotOdds is call/(pot+call) as a percentage, 0 when facing no bet.
func PotOdds(pot, call sdkmath.Int) float64 {
	if call.IsZero() {
		return 0
	}
	odds := sdkmath.LegacyNewDecFromInt(call).
		Quo(sdkmath.LegacyNewDecFromInt(pot.Add(call))).
		MulInt64(100)
	f, err := odds.Float64()
	if err != nil {
		return 0
	}
	return f
}

// ValidateBetAmount checks an opening-bet size against the big blind and the
// player's stack.
func ValidateBetAmount(amount sdkmath.Int, g *state.Game, p *state.PlayerState) state.ValidationResult {
	if amount.LT(g.BigBlind) {
		return state.Invalid("bet must be at least the big blind")
	}
	if amount.GT(p.ChipStack) {
		return state.Invalid("insufficient chips")
	}
	return state.OK()
}

// ValidateRaiseAmount checks a raise size against 2x the current bet and the
// player's stack.
func ValidateRaiseAmount(amount sdkmath.Int, g *state.Game, p *state.PlayerState) state.ValidationResult {
	if amount.LT(g.CurrentBet.MulRaw(2)) {
		return state.Invalid("raise must be at least 2x current bet")
	}
	if amount.GT(p.ChipStack) {
		return state.Invalid("insufficient chips")
	}
	return state.OK()
}
