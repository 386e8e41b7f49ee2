package rules

import (
	sdkmath "cosmossdk.io/math"

	"ledgerholdem/internal/state"
)

// Test fixtures: a 6-max table snapshot with sensible defaults, mutated per
// case.

func amt(v int64) sdkmath.Int { return sdkmath.NewInt(v) }

func testGame(mutators ...func(*state.Game)) *state.Game {
	g := &state.Game{
		Authority:          "authority",
		GameID:             1,
		Stage:              state.StagePreFlop,
		SmallBlind:         amt(10),
		BigBlind:           amt(20),
		MinBuyIn:           amt(1000),
		MaxBuyIn:           amt(50000),
		MaxPlayers:         6,
		CurrentPlayerIndex: 0,
		Pot:                amt(0),
		CurrentBet:         amt(0),
		DeckInitialized:    true,
	}
	for _, m := range mutators {
		m(g)
	}
	return g
}

func testPlayer(seat uint8, mutators ...func(*state.PlayerState)) state.PlayerState {
	p := state.PlayerState{
		Player:           state.Address(string(rune('a' + seat))),
		GameID:           1,
		SeatIndex:        seat,
		Status:           state.StatusActive,
		ChipStack:        amt(5000),
		CurrentBet:       amt(0),
		TotalBetThisHand: amt(0),
	}
	for _, m := range mutators {
		m(&p)
	}
	return p
}

// seatPlayers registers the players into the game's seat array and count.
func seatPlayers(g *state.Game, players []state.PlayerState) {
	for i := range players {
		addr := players[i].Player
		g.Seats[players[i].SeatIndex] = &addr
		g.ActivePlayers[players[i].SeatIndex] = true
	}
	g.PlayerCount = uint8(len(players))
}

func folded(p *state.PlayerState) {
	p.HasFolded = true
	p.Status = state.StatusFolded
}

func allIn(p *state.PlayerState) {
	p.IsAllIn = true
	p.Status = state.StatusAllIn
}
