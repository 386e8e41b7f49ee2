package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ledgerholdem/internal/state"
)

func TestValidateLeave(t *testing.T) {
	waiting := testGame(func(g *state.Game) { g.Stage = state.StageWaiting })
	p := testPlayer(0)
	require.True(t, ValidateLeave(waiting, &p).Valid)

	for _, stage := range []state.Stage{
		state.StagePreFlop, state.StageFlop, state.StageTurn,
		state.StageRiver, state.StageShowdown, state.StageFinished,
	} {
		running := testGame(func(g *state.Game) { g.Stage = stage })
		res := ValidateLeave(running, &p)
		require.False(t, res.Valid, "stage %s", stage)
		require.Contains(t, res.Error, "already started")
	}

	broke := testPlayer(1, func(p *state.PlayerState) { p.ChipStack = amt(0) })
	res := ValidateLeave(waiting, &broke)
	require.False(t, res.Valid)
	require.Contains(t, res.Error, "no chips")
}

func TestRefundAmount(t *testing.T) {
	p := testPlayer(0, func(p *state.PlayerState) { p.ChipStack = amt(4321) })
	require.True(t, amt(4321).Equal(RefundAmount(&p)))
}

func TestPlayerHasLeft(t *testing.T) {
	stillIn := testPlayer(0)
	require.False(t, PlayerHasLeft(&stillIn))

	gone := testPlayer(1, func(p *state.PlayerState) { p.ChipStack = amt(0) })
	require.True(t, PlayerHasLeft(&gone))
}
