package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ledgerholdem/internal/state"
)

func TestValidateGameStart(t *testing.T) {
	players := []state.PlayerState{testPlayer(0), testPlayer(1)}
	g := testGame(func(g *state.Game) { g.Stage = state.StageWaiting })
	seatPlayers(g, players)
	require.True(t, ValidateGameStart(g).Valid)

	short := testGame(func(g *state.Game) { g.Stage = state.StageWaiting })
	seatPlayers(short, players[:1])
	res := ValidateGameStart(short)
	require.False(t, res.Valid)
	require.Contains(t, res.Error, "not enough players")

	running := testGame()
	seatPlayers(running, players)
	res = ValidateGameStart(running)
	require.False(t, res.Valid)
	require.Contains(t, res.Error, "already started")
}

func TestIsBettingRoundComplete(t *testing.T) {
	// Two players, both acted and matched at 100.
	g := testGame(func(g *state.Game) {
		g.CurrentBet = amt(100)
		g.PlayersActed = [state.MaxSeats]bool{true, true}
	})
	players := []state.PlayerState{
		testPlayer(0, func(p *state.PlayerState) { p.CurrentBet = amt(100); p.TotalBetThisHand = amt(100) }),
		testPlayer(1, func(p *state.PlayerState) { p.CurrentBet = amt(100); p.TotalBetThisHand = amt(100) }),
	}
	seatPlayers(g, players)
	require.True(t, IsBettingRoundComplete(g, players))

	// Three players, two folded: round is over regardless of flags.
	g2 := testGame()
	players2 := []state.PlayerState{
		testPlayer(0),
		testPlayer(1, folded),
		testPlayer(2, folded),
	}
	seatPlayers(g2, players2)
	require.True(t, IsBettingRoundComplete(g2, players2))

	// Six players, nobody acted.
	g3 := testGame()
	var players3 []state.PlayerState
	for seat := uint8(0); seat < 6; seat++ {
		players3 = append(players3, testPlayer(seat))
	}
	seatPlayers(g3, players3)
	require.False(t, IsBettingRoundComplete(g3, players3))

	// An all-in player is exempt from matching the bet.
	g4 := testGame(func(g *state.Game) {
		g.CurrentBet = amt(500)
		g.PlayersActed = [state.MaxSeats]bool{true, true}
	})
	players4 := []state.PlayerState{
		testPlayer(0, func(p *state.PlayerState) { p.CurrentBet = amt(500); p.TotalBetThisHand = amt(500) }),
		testPlayer(1, allIn, func(p *state.PlayerState) {
			p.CurrentBet = amt(200)
			p.TotalBetThisHand = amt(200)
			p.ChipStack = amt(0)
		}),
	}
	seatPlayers(g4, players4)
	require.True(t, IsBettingRoundComplete(g4, players4))

	// Acted but bet unmatched: not complete.
	g5 := testGame(func(g *state.Game) {
		g.CurrentBet = amt(100)
		g.PlayersActed = [state.MaxSeats]bool{true, true}
	})
	players5 := []state.PlayerState{
		testPlayer(0, func(p *state.PlayerState) { p.CurrentBet = amt(100); p.TotalBetThisHand = amt(100) }),
		testPlayer(1, func(p *state.PlayerState) { p.CurrentBet = amt(40); p.TotalBetThisHand = amt(40) }),
	}
	seatPlayers(g5, players5)
	require.False(t, IsBettingRoundComplete(g5, players5))
}

func TestActivePlayerCount(t *testing.T) {
	players := []state.PlayerState{
		testPlayer(0),
		testPlayer(1, folded),
		testPlayer(2),
	}
	require.Equal(t, 2, ActivePlayerCount(players))
	require.Equal(t, 0, ActivePlayerCount(nil))
}

func TestAllPlayersAllIn(t *testing.T) {
	require.True(t, AllPlayersAllIn([]state.PlayerState{
		testPlayer(0, allIn),
		testPlayer(1, folded),
		testPlayer(2, allIn),
	}))
	require.False(t, AllPlayersAllIn([]state.PlayerState{
		testPlayer(0, allIn),
		testPlayer(1),
	}))
}

func TestShouldProceedToShowdown(t *testing.T) {
	// One player left.
	g := testGame()
	players := []state.PlayerState{testPlayer(0), testPlayer(1, folded)}
	seatPlayers(g, players)
	require.True(t, ShouldProceedToShowdown(g, players))

	// Everyone all-in.
	g2 := testGame(func(g *state.Game) { g.Stage = state.StageFlop })
	players2 := []state.PlayerState{testPlayer(0, allIn), testPlayer(1, allIn)}
	seatPlayers(g2, players2)
	require.True(t, ShouldProceedToShowdown(g2, players2))

	// River round complete.
	g3 := testGame(func(g *state.Game) {
		g.Stage = state.StageRiver
		g.CurrentBet = amt(0)
		g.PlayersActed = [state.MaxSeats]bool{true, true}
	})
	players3 := []state.PlayerState{testPlayer(0), testPlayer(1)}
	seatPlayers(g3, players3)
	require.True(t, ShouldProceedToShowdown(g3, players3))

	// Same position pre-river: keep playing.
	g4 := testGame(func(g *state.Game) {
		g.Stage = state.StageTurn
		g.PlayersActed = [state.MaxSeats]bool{true, true}
	})
	seatPlayers(g4, players3)
	require.False(t, ShouldProceedToShowdown(g4, players3))
}

func TestNextPlayerIndex(t *testing.T) {
	// Three seated players, seat 1 folded, action on seat 0.
	g := testGame()
	players := []state.PlayerState{
		testPlayer(0),
		testPlayer(1, folded),
		testPlayer(2),
	}
	seatPlayers(g, players)
	require.Equal(t, 2, NextPlayerIndex(g, players))

	// Everyone else folded or all-in: no eligible seat.
	g2 := testGame()
	players2 := []state.PlayerState{
		testPlayer(0, folded),
		testPlayer(1, folded),
		testPlayer(2, allIn),
	}
	seatPlayers(g2, players2)
	require.Equal(t, -1, NextPlayerIndex(g2, players2))

	// Wraps past the top seat.
	g3 := testGame(func(g *state.Game) { g.CurrentPlayerIndex = 2 })
	players3 := []state.PlayerState{
		testPlayer(0),
		testPlayer(1, folded),
		testPlayer(2),
	}
	seatPlayers(g3, players3)
	require.Equal(t, 0, NextPlayerIndex(g3, players3))

	// Empty seats are skipped.
	g4 := testGame()
	players4 := []state.PlayerState{
		testPlayer(0),
		testPlayer(4),
	}
	seatPlayers(g4, players4)
	g4.PlayerCount = 2
	require.Equal(t, 4, NextPlayerIndex(g4, players4))
}

func TestValidateGameConfig(t *testing.T) {
	cfg := &state.GameConfig{
		SmallBlind: amt(10),
		BigBlind:   amt(20),
		MinBuyIn:   amt(1000),
		MaxBuyIn:   amt(50000),
		MaxPlayers: 6,
	}
	require.True(t, ValidateGameConfig(cfg).Valid)

	lowBuyIn := *cfg
	lowBuyIn.MinBuyIn = amt(500)
	res := ValidateGameConfig(&lowBuyIn)
	require.False(t, res.Valid)
	require.Contains(t, res.Error, "50 big blinds")

	inverted := *cfg
	inverted.SmallBlind, inverted.BigBlind = amt(20), amt(10)
	res = ValidateGameConfig(&inverted)
	require.False(t, res.Valid)
	require.Contains(t, res.Error, "Big blind")

	equal := *cfg
	equal.SmallBlind = amt(20)
	require.False(t, ValidateGameConfig(&equal).Valid)

	tooMany := *cfg
	tooMany.MaxPlayers = 7
	res = ValidateGameConfig(&tooMany)
	require.False(t, res.Valid)
	require.Contains(t, res.Error, "between 2 and 6")

	solo := *cfg
	solo.MaxPlayers = 1
	require.False(t, ValidateGameConfig(&solo).Valid)
}
