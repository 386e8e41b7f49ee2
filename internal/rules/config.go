package rules

import (
	"ledgerholdem/internal/state"
)

// ValidateGameConfig checks a proposed table configuration: blinds ordered,
// a minimum buy-in of at least 50 big blinds, and 2..6 seats.
func ValidateGameConfig(cfg *state.GameConfig) state.ValidationResult {
	if !cfg.SmallBlind.LT(cfg.BigBlind) {
		return state.Invalid("Big blind must exceed small blind")
	}
	if cfg.MinBuyIn.LT(cfg.BigBlind.MulRaw(50)) {
		return state.Invalid("minimum buy-in must be at least 50 big blinds")
	}
	if cfg.MaxPlayers < 2 || cfg.MaxPlayers > state.MaxSeats {
		return state.Invalid("player count must be between 2 and 6")
	}
	return state.OK()
}
