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
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Outcome represents the result of a pairing from one player's side.
type Outcome int

const (
	Win  Outcome = +1
	Draw Outcome = 0
	Loss Outcome = -1
	Bye  Outcome = +2 // Awarded to a player without an opponent
)

// Reverse returns the outcome of the same pairing from the other side.
func (outcome Outcome) Reverse() Outcome {
	switch outcome {
	case Win, Loss, Draw:
		return -outcome
	default:
		return outcome
	}
}

// Valid reports whether the outcome is one of the known outcomes.
func (outcome Outcome) Valid() bool {
	switch outcome {
	case Win, Draw, Loss, Bye:
		return true
	default:
		return false
	}
}

// String returns a string representation of the given Outcome.
func (outcome Outcome) String() string {
	switch outcome {
	case Win:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Loss:
		return "0-1"
	case Bye:
		return "bye"
	default:
		return "?-?"
	}
}

// Word returns the outcome as a plain word, as used in tournament files.
func (outcome Outcome) Word() string {
	switch outcome {
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Loss:
		return "loss"
	case Bye:
		return "bye"
	default:
		return "unknown"
	}
}

// ParseOutcome parses either result notation ("1-0", "1/2-1/2", "0-1") or
// one of the words win, draw, loss and bye.
func ParseOutcome(str string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "1-0", "win", "w":
		return Win, nil
	case "1/2-1/2", "½-½", "draw", "d":
		return Draw, nil
	case "0-1", "loss", "l":
		return Loss, nil
	case "bye":
		return Bye, nil
	default:
		return 0, fmt.Errorf("parse outcome: invalid outcome %q", str)
	}
}

func (outcome Outcome) MarshalYAML() (any, error) {
	if !outcome.Valid() {
		return nil, fmt.Errorf("marshal outcome: invalid outcome %d", int(outcome))
	}

	return outcome.Word(), nil
}

func (outcome *Outcome) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}

	parsed, err := ParseOutcome(str)
	if err != nil {
		return err
	}

	*outcome = parsed
	return nil
}
