package state

import (
	"errors"
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

const (
	// ModuleName is the codespace for engine business errors. Codes mirror the
	// ledger program's error table one-to-one.
	ModuleName = "poker"

	// LedgerCodespace carries ledger-reported failures that do not map to a
	// known business code.
	LedgerCodespace = "ledger"
)

// Business errors. The code range is closed and contiguous (1..23); every
// exceptional failure surfaced by the engine carries exactly one of these.
var (
	ErrGameFull           = errorsmod.Register(ModuleName, 1, "game is full")
	ErrInvalidBuyIn       = errorsmod.Register(ModuleName, 2, "invalid buy-in amount")
	ErrGameStarted        = errorsmod.Register(ModuleName, 3, "game has already started")
	ErrGameNotStarted     = errorsmod.Register(ModuleName, 4, "game has not started")
	ErrNotEnoughPlayers   = errorsmod.Register(ModuleName, 5, "not enough players")
	ErrNotPlayerTurn      = errorsmod.Register(ModuleName, 6, "not your turn")
	ErrInvalidAction      = errorsmod.Register(ModuleName, 7, "invalid action")
	ErrInsufficientChips  = errorsmod.Register(ModuleName, 8, "insufficient chips")
	ErrInvalidBetAmount   = errorsmod.Register(ModuleName, 9, "invalid bet amount")
	ErrInvalidRaiseAmount = errorsmod.Register(ModuleName, 10, "invalid raise amount")
	ErrPlayerNotInGame    = errorsmod.Register(ModuleName, 11, "player is not in this game")
	ErrAlreadyFolded      = errorsmod.Register(ModuleName, 12, "player has already folded")
	ErrAlreadyAllIn       = errorsmod.Register(ModuleName, 13, "player is already all-in")
	ErrInvalidStage       = errorsmod.Register(ModuleName, 14, "invalid game stage")
	ErrDeckNotInitialized = errorsmod.Register(ModuleName, 15, "deck has not been initialized")
	ErrInvalidCard        = errorsmod.Register(ModuleName, 16, "invalid card")
	ErrSeatOccupied       = errorsmod.Register(ModuleName, 17, "seat is already occupied")
	ErrInvalidSeatIndex   = errorsmod.Register(ModuleName, 18, "invalid seat index")
	ErrCannotLeaveGame    = errorsmod.Register(ModuleName, 19, "cannot leave an active game")
	ErrNoChipsToWithdraw  = errorsmod.Register(ModuleName, 20, "no chips to withdraw")
	ErrUnauthorized       = errorsmod.Register(ModuleName, 21, "unauthorized")
	ErrInvalidGameConfig  = errorsmod.Register(ModuleName, 22, "invalid game configuration")
	ErrGameNotFinished    = errorsmod.Register(ModuleName, 23, "game is not finished")
)

// ErrLedgerFailure wraps external failures with no known business code. It
// lives in its own codespace so it cannot collide with the poker table above.
var ErrLedgerFailure = errorsmod.Register(LedgerCodespace, 1, "ledger program failure")

// fallbackMessage is returned by MessageOf when no message can be derived.
const fallbackMessage = "unknown ledger error"

var (
	errByCode = map[uint32]*errorsmod.Error{
		1: ErrGameFull, 2: ErrInvalidBuyIn, 3: ErrGameStarted,
		4: ErrGameNotStarted, 5: ErrNotEnoughPlayers, 6: ErrNotPlayerTurn,
		7: ErrInvalidAction, 8: ErrInsufficientChips, 9: ErrInvalidBetAmount,
		10: ErrInvalidRaiseAmount, 11: ErrPlayerNotInGame, 12: ErrAlreadyFolded,
		13: ErrAlreadyAllIn, 14: ErrInvalidStage, 15: ErrDeckNotInitialized,
		16: ErrInvalidCard, 17: ErrSeatOccupied, 18: ErrInvalidSeatIndex,
		19: ErrCannotLeaveGame, 20: ErrNoChipsToWithdraw, 21: ErrUnauthorized,
		22: ErrInvalidGameConfig, 23: ErrGameNotFinished,
	}

	errNames = map[uint32]string{
		1: "GameFull", 2: "InvalidBuyIn", 3: "GameAlreadyStarted",
		4: "GameNotStarted", 5: "NotEnoughPlayers", 6: "NotPlayerTurn",
		7: "InvalidAction", 8: "InsufficientChips", 9: "InvalidBetAmount",
		10: "InvalidRaiseAmount", 11: "PlayerNotInGame", 12: "PlayerAlreadyFolded",
		13: "PlayerAlreadyAllIn", 14: "InvalidStage", 15: "DeckNotInitialized",
		16: "InvalidCard", 17: "SeatOccupied", 18: "InvalidSeatIndex",
		19: "CannotLeaveActiveGame", 20: "NoChipsToWithdraw", 21: "Unauthorized",
		22: "InvalidGameConfig", 23: "GameNotFinished",
	}
)

// LedgerError is the raw shape in which the account-decoding layer reports
// structured ledger program failures before normalization.
type LedgerError struct {
	Code    uint32 `json:"code"`
	Message string `json:"message"`
}

func (e *LedgerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ledger error code %d", e.Code)
	}
	return e.Message
}

// ErrorRecord is the wire-friendly view of a typed error.
type ErrorRecord struct {
	Name    string `json:"name"`
	Code    uint32 `json:"code"`
	Message string `json:"message"`
}

func coded(err error) (*errorsmod.Error, bool) {
	var e *errorsmod.Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsCode reports whether err carries the given business code.
func IsCode(err error, code uint32) bool {
	sentinel, ok := errByCode[code]
	if !ok {
		return false
	}
	return errors.Is(err, sentinel)
}

// ErrorRecordFrom serializes any error into a {name, code, message} record.
// Errors outside the business taxonomy report as LedgerFailure with code 0.
func ErrorRecordFrom(err error) ErrorRecord {
	if e, ok := coded(err); ok && e.Codespace() == ModuleName {
		return ErrorRecord{
			Name:    errNames[e.ABCICode()],
			Code:    e.ABCICode(),
			Message: err.Error(),
		}
	}
	rec := ErrorRecord{Name: "LedgerFailure", Message: fallbackMessage}
	if err != nil {
		rec.Message = err.Error()
	}
	return rec
}

// NormalizeLedgerError lifts an arbitrary external error into the typed
// taxonomy. It is total: already-typed errors pass through unchanged,
// structured ledger errors with a known code become the matching sentinel
// (keeping their reported message), and everything else is wrapped as a
// generic ledger failure. nil stays nil.
func NormalizeLedgerError(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := coded(err); ok {
		switch e.Codespace() {
		case ModuleName, LedgerCodespace:
			return err
		}
	}
	var le *LedgerError
	if errors.As(err, &le) {
		if sentinel, ok := errByCode[le.Code]; ok {
			if le.Message == "" {
				return sentinel
			}
			return errorsmod.Wrap(sentinel, le.Message)
		}
		return errorsmod.Wrapf(ErrLedgerFailure, "code %d: %s", le.Code, le.Error())
	}
	return errorsmod.Wrap(ErrLedgerFailure, err.Error())
}

// MessageOf returns the canonical message for a typed business error, the raw
// message for any other error, and a fixed fallback for nil.
func MessageOf(err error) string {
	if err == nil {
		return fallbackMessage
	}
	if e, ok := coded(err); ok && e.Codespace() == ModuleName {
		if sentinel, known := errByCode[e.ABCICode()]; known {
			return sentinel.Error()
		}
	}
	return err.Error()
}
