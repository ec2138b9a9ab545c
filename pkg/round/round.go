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

import "fmt"

// Report is one player's outcome of a pairing, as reported by a
// scorekeeper. A match between two players is closed by two reports, a bye
// by a single Bye report for the byed player.
type Report struct {
	Pairing Pairing `yaml:"pairing"`
	Player  string  `yaml:"player"`
	Outcome Outcome `yaml:"outcome"`
}

// Reports returns the reports which close the given pairing with PlayerA
// getting the given outcome. For a bye the outcome is ignored.
func Reports(pairing Pairing, outcome Outcome) []Report {
	if pairing.IsBye() {
		return []Report{{Pairing: pairing, Player: pairing.PlayerA, Outcome: Bye}}
	}

	return []Report{
		{Pairing: pairing, Player: pairing.PlayerA, Outcome: outcome},
		{Pairing: pairing, Player: pairing.PlayerB, Outcome: outcome.Reverse()},
	}
}

// Round is a numbered set of pairings. Rounds are only ever appended to the
// tournament history; the only mutation is attaching results.
type Round struct {
	Index    int       `yaml:"index"`
	Pairings []Pairing `yaml:"pairings"`
}

// New creates the round with the given index.
func New(index int, pairings []Pairing) Round {
	return Round{Index: index, Pairings: pairings}
}

// Closed reports whether every pairing in the round has a result.
func (round *Round) Closed() bool {
	for _, pairing := range round.Pairings {
		if !pairing.Reported() {
			return false
		}
	}

	return true
}

// Find returns the index of the given pairing in the round, or -1.
func (round *Round) Find(pairing Pairing) int {
	for i, candidate := range round.Pairings {
		if candidate.Same(pairing) {
			return i
		}
	}

	return -1
}

// PairingOf returns the pairing the given player takes part in.
func (round *Round) PairingOf(player string) (Pairing, bool) {
	for _, pairing := range round.Pairings {
		if pairing.Has(player) {
			return pairing, true
		}
	}

	return Pairing{}, false
}

// Validate checks that the reports close out every pairing of the round and
// returns PlayerA's outcome for each pairing, in pairing order.
func (round *Round) Validate(reports []Report) ([]Outcome, error) {
	grouped := make([][]Report, len(round.Pairings))
	for _, report := range reports {
		i := round.Find(report.Pairing)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s is not part of round %d", ErrInconsistentResults, report.Pairing, round.Index)
		}

		if !round.Pairings[i].Has(report.Player) {
			return nil, fmt.Errorf("%w: %s is not part of %s", ErrInconsistentResults, report.Player, round.Pairings[i])
		}

		grouped[i] = append(grouped[i], report)
	}

	outcomes := make([]Outcome, len(round.Pairings))
	missing := -1
	for i, pairing := range round.Pairings {
		if pairing.Reported() {
			return nil, fmt.Errorf("%w: %s", ErrDoubleRecording, pairing)
		}

		if len(grouped[i]) == 0 {
			if missing < 0 {
				missing = i
			}
			continue
		}

		outcome, err := pairingOutcome(pairing, grouped[i])
		if err != nil {
			return nil, err
		}

		outcomes[i] = outcome
	}

	if missing >= 0 {
		return nil, fmt.Errorf("%w: no result for %s", ErrIncompleteResults, round.Pairings[missing])
	}

	return outcomes, nil
}

// Apply validates the reports and attaches the results to the pairings.
// Nothing is modified if the reports do not close out the round.
func (round *Round) Apply(reports []Report) error {
	outcomes, err := round.Validate(reports)
	if err != nil {
		return err
	}

	for i := range round.Pairings {
		if err := round.Pairings[i].SetResult(outcomes[i]); err != nil {
			// Validate has already rejected reported pairings.
			panic(err)
		}
	}

	return nil
}

// Clone returns a deep copy of the round.
func (round Round) Clone() Round {
	pairings := make([]Pairing, len(round.Pairings))
	for i, pairing := range round.Pairings {
		pairings[i] = pairing.clone()
	}

	return Round{Index: round.Index, Pairings: pairings}
}

// pairingOutcome combines the reports of a single pairing into PlayerA's
// outcome, failing if the reports contradict each other.
func pairingOutcome(pairing Pairing, reports []Report) (Outcome, error) {
	if pairing.IsBye() {
		if len(reports) != 1 || reports[0].Outcome != Bye {
			return 0, fmt.Errorf("%w: %s needs exactly one bye report", ErrInconsistentResults, pairing)
		}

		return Bye, nil
	}

	if len(reports) != 2 {
		return 0, fmt.Errorf("%w: %s needs one report per player, got %d", ErrInconsistentResults, pairing, len(reports))
	}

	a, b := reports[0], reports[1]
	if a.Player == b.Player {
		return 0, fmt.Errorf("%w: %s reported twice in %s", ErrInconsistentResults, a.Player, pairing)
	}

	if a.Player != pairing.PlayerA {
		a, b = b, a
	}

	switch {
	case a.Outcome == Bye, b.Outcome == Bye, !a.Outcome.Valid(), !b.Outcome.Valid():
		return 0, fmt.Errorf("%w: invalid outcome for %s", ErrInconsistentResults, pairing)
	case a.Outcome.Reverse() != b.Outcome:
		return 0, fmt.Errorf("%w: %s reported %s and %s", ErrInconsistentResults, pairing, a.Outcome.Word(), b.Outcome.Word())
	}

	return a.Outcome, nil
}
