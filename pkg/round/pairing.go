// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package round

import (
	"errors"
	"fmt"
)

var (
	ErrDoubleRecording     = errors.New("pairing already has a result")
	ErrIncompleteResults   = errors.New("incomplete results")
	ErrInconsistentResults = errors.New("inconsistent results")
	ErrInvalidResult       = errors.New("invalid result")
)

// Pairing is a single match of a round. PlayerB is empty when PlayerA has
// a bye. Result is PlayerA's outcome and stays nil until the match has been
// reported.
type Pairing struct {
	Round int `yaml:"round"`

	PlayerA string `yaml:"player-a"`
	PlayerB string `yaml:"player-b,omitempty"`

	Result *Outcome `yaml:"result,omitempty"`
}

// NewPairing creates a pairing between the two players in the given round.
func NewPairing(round int, a, b string) Pairing {
	return Pairing{Round: round, PlayerA: a, PlayerB: b}
}

// NewBye creates a bye pairing for the given player.
func NewBye(round int, player string) Pairing {
	return Pairing{Round: round, PlayerA: player}
}

// IsBye reports whether the pairing is a bye.
func (pairing Pairing) IsBye() bool {
	return pairing.PlayerB == ""
}

// Has reports whether the given player takes part in the pairing.
func (pairing Pairing) Has(player string) bool {
	return player != "" && (pairing.PlayerA == player || pairing.PlayerB == player)
}

// Opponent returns the opponent of the given player. It returns false if the
// player has a bye or is not part of the pairing.
func (pairing Pairing) Opponent(player string) (string, bool) {
	switch {
	case pairing.IsBye():
		return "", false
	case pairing.PlayerA == player:
		return pairing.PlayerB, true
	case pairing.PlayerB == player:
		return pairing.PlayerA, true
	default:
		return "", false
	}
}

// Same reports whether the two pairings are between the same players,
// regardless of their order, round, or result.
func (pairing Pairing) Same(other Pairing) bool {
	return (pairing.PlayerA == other.PlayerA && pairing.PlayerB == other.PlayerB) ||
		(pairing.PlayerA == other.PlayerB && pairing.PlayerB == other.PlayerA)
}

// Reported reports whether the pairing has a result.
func (pairing Pairing) Reported() bool {
	return pairing.Result != nil
}

// OutcomeOf returns the given player's outcome of the pairing.
func (pairing Pairing) OutcomeOf(player string) (Outcome, bool) {
	if pairing.Result == nil {
		return 0, false
	}

	switch player {
	case pairing.PlayerA:
		return *pairing.Result, true
	case pairing.PlayerB:
		return pairing.Result.Reverse(), true
	default:
		return 0, false
	}
}

// SetResult sets PlayerA's outcome. A result can only be set once.
func (pairing *Pairing) SetResult(outcome Outcome) error {
	if pairing.Result != nil {
		return fmt.Errorf("%w: %s", ErrDoubleRecording, pairing)
	}

	pairing.Result = &outcome
	return nil
}

// CheckResult reports whether the pairing's result, if any, fits the
// pairing: a bye can only be scored as a bye, and a game never can.
func (pairing Pairing) CheckResult() error {
	if !pairing.Reported() {
		return nil
	}

	outcome := *pairing.Result
	switch {
	case pairing.IsBye() && outcome != Bye,
		!pairing.IsBye() && (!outcome.Valid() || outcome == Bye):
		return fmt.Errorf("%w: %s: %s", ErrInvalidResult, pairing, outcome.Word())
	}

	return nil
}

func (pairing Pairing) String() string {
	if pairing.IsBye() {
		return fmt.Sprintf("round %d: %s (bye)", pairing.Round, pairing.PlayerA)
	}

	return fmt.Sprintf("round %d: %s vs %s", pairing.Round, pairing.PlayerA, pairing.PlayerB)
}

// clone returns a copy of the pairing that does not share its result.
func (pairing Pairing) clone() Pairing {
	if pairing.Result != nil {
		result := *pairing.Result
		pairing.Result = &result
	}

	return pairing
}
