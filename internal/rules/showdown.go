package rules

import (
	sdkmath "cosmossdk.io/math"

	"ledgerholdem/internal/state"
)

// ValidateShowdown checks that the hand has reached showdown.
func ValidateShowdown(g *state.Game) state.ValidationResult {
	if g.Stage != state.StageShowdown {
		return state.Invalid("hand is not at showdown")
	}
	return state.OK()
}

// Payout is each winner's even share of the pot. Integer division: a
// non-divisible remainder is dropped here; the external payout distributor
// owns any odd-chip rule. Zero winners pay zero.
func Payout(pot sdkmath.Int, winnerCount int) sdkmath.Int {
	if winnerCount <= 0 {
		return sdkmath.ZeroInt()
	}
	return pot.QuoRaw(int64(winnerCount))
}

// SidePotTotal is the flat total of all distributable chips: main pot plus
// every side pot. Per-pot winner eligibility is not computed here; this is a
// capacity primitive for the external payout distributor.
func SidePotTotal(mainPot sdkmath.Int, sidePots []sdkmath.Int) sdkmath.Int {
	total := mainPot
	for _, p := range sidePots {
		total = total.Add(p)
	}
	return total
}
