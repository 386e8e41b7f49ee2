package rules

import (
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"

	"ledgerholdem/internal/state"
)

// Engine wraps the pure validators with structured logging of rejected
// decisions. It holds no game state; a single Engine may serve any number of
// games concurrently.
type Engine struct {
	logger log.Logger
}

func New(logger log.Logger) *Engine {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Engine{logger: logger}
}

func (e *Engine) logRejected(check string, g *state.Game, res state.ValidationResult, kv ...any) {
	if res.Valid {
		return
	}
	kv = append([]any{"check", check, "gameId", g.GameID, "stage", g.Stage.String(), "reason", res.Error}, kv...)
	e.logger.Debug("validation rejected", kv...)
}

func (e *Engine) ValidateAction(g *state.Game, p *state.PlayerState, action Action, amount sdkmath.Int) state.ValidationResult {
	res := ValidateAction(g, p, action, amount)
	e.logRejected("action", g, res, "player", p.Player, "action", string(action))
	return res
}

func (e *Engine) ValidateGameStart(g *state.Game) state.ValidationResult {
	res := ValidateGameStart(g)
	e.logRejected("gameStart", g, res)
	return res
}

func (e *Engine) ValidateShowdown(g *state.Game) state.ValidationResult {
	res := ValidateShowdown(g)
	e.logRejected("showdown", g, res)
	return res
}

func (e *Engine) ValidateLeave(g *state.Game, p *state.PlayerState) state.ValidationResult {
	res := ValidateLeave(g, p)
	e.logRejected("leave", g, res, "player", p.Player)
	return res
}

func (e *Engine) ValidateGameConfig(cfg *state.GameConfig) state.ValidationResult {
	res := ValidateGameConfig(cfg)
	if !res.Valid {
		e.logger.Debug("validation rejected", "check", "gameConfig", "reason", res.Error)
	}
	return res
}

// ValidateSnapshots re-checks the structural invariants of decoded snapshots
// before any decision is made against them. Failures are typed errors from
// the taxonomy, normalized so callers can match on codes.
func (e *Engine) ValidateSnapshots(g *state.Game, players ...*state.PlayerState) error {
	if err := g.Validate(); err != nil {
		e.logger.Error("bad game snapshot", "gameId", g.GameID, "err", err)
		return state.NormalizeLedgerError(err)
	}
	for _, p := range players {
		if err := p.Validate(); err != nil {
			e.logger.Error("bad player snapshot", "gameId", g.GameID, "player", p.Player, "err", err)
			return state.NormalizeLedgerError(err)
		}
	}
	return nil
}
