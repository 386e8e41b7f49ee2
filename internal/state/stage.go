package state

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
)

// Stage is the hand lifecycle. Transitions are strictly forward; the engine
// never moves a stage backward.
type Stage uint8

const (
	StageWaiting Stage = iota
	StagePreFlop
	StageFlop
	StageTurn
	StageRiver
	StageShowdown
	StageFinished
)

var stageNames = [...]string{
	StageWaiting:  "waiting",
	StagePreFlop:  "preFlop",
	StageFlop:     "flop",
	StageTurn:     "turn",
	StageRiver:    "river",
	StageShowdown: "showdown",
	StageFinished: "finished",
}

func (s Stage) Valid() bool {
	return s <= StageFinished
}

func (s Stage) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return stageNames[s]
}

// Next returns the following stage. StageFinished is terminal and is its own
// successor.
func (s Stage) Next() Stage {
	if s >= StageFinished {
		return StageFinished
	}
	return s + 1
}

func ParseStage(name string) (Stage, error) {
	for s, n := range stageNames {
		if n == name {
			return Stage(s), nil
		}
	}
	return 0, errorsmod.Wrapf(ErrInvalidStage, "unknown stage %q", name)
}

func (s Stage) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, errorsmod.Wrapf(ErrInvalidStage, "stage %d", s)
	}
	return json.Marshal(s.String())
}

func (s *Stage) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	parsed, err := ParseStage(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
