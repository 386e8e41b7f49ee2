// Package state defines the immutable snapshot types the rules engine
// operates on, plus the typed error taxonomy shared with the ledger program.
//
// Snapshots are produced by the external account-decoding layer; this package
// never fetches or mutates persistent state. All monetary fields are
// arbitrary-precision, so amounts beyond 2^63 survive decoding without
// truncation.
package state

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"ledgerholdem/internal/cards"
)

// Address identifies a ledger account (player or game authority).
type Address string

// MaxSeats is the fixed seat-array capacity. A table is configured for
// 2..MaxSeats players.
const MaxSeats = 6

// ValidationResult is the outcome of every business-rule legality check.
// Expected failures are reported here, never as error values.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func OK() ValidationResult {
	return ValidationResult{Valid: true}
}

func Invalid(reason string) ValidationResult {
	return ValidationResult{Error: reason}
}

// Game is a per-call snapshot of an on-ledger game account.
//
// Seats is fixed-capacity; a nil entry is an empty seat. Seats at index >=
// PlayerCount are always empty.
type Game struct {
	Authority Address `json:"authority"`
	GameID    uint64  `json:"gameId"`
	Stage     Stage   `json:"stage"`

	SmallBlind sdkmath.Int `json:"smallBlind"`
	BigBlind   sdkmath.Int `json:"bigBlind"`
	MinBuyIn   sdkmath.Int `json:"minBuyIn"`
	MaxBuyIn   sdkmath.Int `json:"maxBuyIn"`

	MaxPlayers  uint8 `json:"maxPlayers"`
	PlayerCount uint8 `json:"playerCount"`

	Seats         [MaxSeats]*Address `json:"seats"`
	ActivePlayers [MaxSeats]bool     `json:"activePlayers"`

	DealerPosition     int `json:"dealerPosition"`
	CurrentPlayerIndex int `json:"currentPlayerIndex"` // -1 when no one is to act

	Pot        sdkmath.Int `json:"pot"`
	CurrentBet sdkmath.Int `json:"currentBet"`

	PlayersActed [MaxSeats]bool `json:"playersActed"`

	CommunityCards         []cards.Card `json:"communityCards,omitempty"`
	CommunityCardsRevealed uint8        `json:"communityCardsRevealed"`

	DeckInitialized bool `json:"deckInitialized"`

	CreatedAt int64 `json:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty"`
}

type PlayerStatus string

const (
	StatusActive     PlayerStatus = "active"
	StatusFolded     PlayerStatus = "folded"
	StatusAllIn      PlayerStatus = "allIn"
	StatusSittingOut PlayerStatus = "sittingOut"
)

// PlayerState is a per-call snapshot of one player's on-ledger account.
type PlayerState struct {
	Player    Address      `json:"player"`
	GameID    uint64       `json:"gameId"`
	SeatIndex uint8        `json:"seatIndex"`
	Status    PlayerStatus `json:"status"`

	ChipStack        sdkmath.Int `json:"chipStack"`
	CurrentBet       sdkmath.Int `json:"currentBet"`       // this betting round
	TotalBetThisHand sdkmath.Int `json:"totalBetThisHand"`

	HoleCards []cards.Card `json:"holeCards,omitempty"`

	HasFolded bool `json:"hasFolded"`
	IsAllIn   bool `json:"isAllIn"`

	JoinedAt     int64 `json:"joinedAt,omitempty"`
	LastActionAt int64 `json:"lastActionAt,omitempty"`
}

// GameConfig is the table configuration proposed at game creation.
type GameConfig struct {
	SmallBlind sdkmath.Int `json:"smallBlind"`
	BigBlind   sdkmath.Int `json:"bigBlind"`
	MinBuyIn   sdkmath.Int `json:"minBuyIn"`
	MaxBuyIn   sdkmath.Int `json:"maxBuyIn"`
	MaxPlayers uint8       `json:"maxPlayers"`
}

func amountSet(i sdkmath.Int) bool {
	return !i.IsNil() && !i.IsNegative()
}

// Validate re-checks the structural invariants a well-formed decoded game
// snapshot must hold. Violations are typed errors, not ValidationResults:
// a snapshot that fails here was corrupted before it reached the engine.
func (g *Game) Validate() error {
	if !g.Stage.Valid() {
		return errorsmod.Wrapf(ErrInvalidStage, "stage %d", g.Stage)
	}
	if g.MaxPlayers < 2 || g.MaxPlayers > MaxSeats {
		return errorsmod.Wrapf(ErrInvalidGameConfig, "maxPlayers %d", g.MaxPlayers)
	}
	if g.PlayerCount > g.MaxPlayers {
		return errorsmod.Wrapf(ErrInvalidGameConfig, "playerCount %d exceeds maxPlayers %d", g.PlayerCount, g.MaxPlayers)
	}
	for i := int(g.PlayerCount); i < MaxSeats; i++ {
		if g.Seats[i] != nil {
			return errorsmod.Wrapf(ErrInvalidSeatIndex, "seat %d occupied beyond playerCount %d", i, g.PlayerCount)
		}
	}
	if g.CurrentPlayerIndex < -1 || g.CurrentPlayerIndex >= MaxSeats {
		return errorsmod.Wrapf(ErrInvalidSeatIndex, "currentPlayerIndex %d", g.CurrentPlayerIndex)
	}
	for _, amt := range []sdkmath.Int{g.SmallBlind, g.BigBlind, g.MinBuyIn, g.MaxBuyIn, g.Pot, g.CurrentBet} {
		if !amountSet(amt) {
			return errorsmod.Wrap(ErrInvalidGameConfig, "unset or negative amount")
		}
	}
	if g.CommunityCardsRevealed > 5 || len(g.CommunityCards) > 5 {
		return errorsmod.Wrapf(ErrInvalidCard, "%d community cards", g.CommunityCardsRevealed)
	}
	return nil
}

// Validate re-checks the structural invariants of a decoded player snapshot.
func (p *PlayerState) Validate() error {
	if p.SeatIndex >= MaxSeats {
		return errorsmod.Wrapf(ErrInvalidSeatIndex, "seat %d", p.SeatIndex)
	}
	for _, amt := range []sdkmath.Int{p.ChipStack, p.CurrentBet, p.TotalBetThisHand} {
		if !amountSet(amt) {
			return errorsmod.Wrap(ErrInsufficientChips, "unset or negative amount")
		}
	}
	if p.CurrentBet.GT(p.TotalBetThisHand) {
		return errorsmod.Wrapf(ErrInvalidBetAmount, "currentBet %s exceeds totalBetThisHand %s", p.CurrentBet, p.TotalBetThisHand)
	}
	if len(p.HoleCards) > 2 {
		return errorsmod.Wrapf(ErrInvalidCard, "%d hole cards", len(p.HoleCards))
	}
	return nil
}
