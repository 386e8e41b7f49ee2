package rules

import (
	"ledgerholdem/internal/state"
)

// ValidateGameStart checks that a waiting game has enough seated players to
// begin.
func ValidateGameStart(g *state.Game) state.ValidationResult {
	if g.Stage != state.StageWaiting {
		return state.Invalid("game has already started")
	}
	if g.PlayerCount < 2 {
		return state.Invalid("not enough players")
	}
	return state.OK()
}

// IsBettingRoundComplete reports whether the current betting round is over:
// at most one player is still in the hand, or every player who can still act
// has acted and matched the current bet. All-in players are exempt from the
// match requirement.
func IsBettingRoundComplete(g *state.Game, players []state.PlayerState) bool {
	notFolded := 0
	for i := range players {
		if !players[i].HasFolded {
			notFolded++
		}
	}
	if notFolded <= 1 {
		return true
	}
	for i := range players {
		p := &players[i]
		if p.HasFolded || p.IsAllIn {
			continue
		}
		if p.SeatIndex >= state.MaxSeats || !g.PlayersActed[p.SeatIndex] {
			return false
		}
		if !p.CurrentBet.Equal(g.CurrentBet) {
			return false
		}
	}
	return true
}

// ActivePlayerCount counts players still in the hand.
func ActivePlayerCount(players []state.PlayerState) int {
	n := 0
	for i := range players {
		if !players[i].HasFolded {
			n++
		}
	}
	return n
}

// AllPlayersAllIn reports whether every player still in the hand is all-in.
func AllPlayersAllIn(players []state.PlayerState) bool {
	for i := range players {
		if players[i].HasFolded {
			continue
		}
		if !players[i].IsAllIn {
			return false
		}
	}
	return true
}

// ShouldProceedToShowdown reports whether no further betting is possible: one
// player left, everyone all-in, or the river round is complete.
func ShouldProceedToShowdown(g *state.Game, players []state.PlayerState) bool {
	if ActivePlayerCount(players) <= 1 {
		return true
	}
	if AllPlayersAllIn(players) {
		return true
	}
	return g.Stage == state.StageRiver && IsBettingRoundComplete(g, players)
}

// NextPlayerIndex scans seats clockwise from just after CurrentPlayerIndex,
// wrapping over the table's seat slots, and returns the first occupied seat
// whose player can still act. The scanning seat itself is considered last.
// Returns -1 when no eligible seat exists.
func NextPlayerIndex(g *state.Game, players []state.PlayerState) int {
	max := int(g.MaxPlayers)
	if max <= 0 || max > state.MaxSeats {
		max = state.MaxSeats
	}

	bySeat := make(map[int]*state.PlayerState, len(players))
	for i := range players {
		bySeat[int(players[i].SeatIndex)] = &players[i]
	}

	for step := 1; step <= max; step++ {
		i := (g.CurrentPlayerIndex + step) % max
		if i < 0 {
			i += max
		}
		if g.Seats[i] == nil {
			continue
		}
		p, ok := bySeat[i]
		if !ok || p.HasFolded || p.IsAllIn {
			continue
		}
		return i
	}
	return -1
}
