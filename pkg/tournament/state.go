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

package tournament

import (
	"fmt"

	"laptudirm.com/x/pairings/pkg/player"
	"laptudirm.com/x/pairings/pkg/round"
)

// State is the serializable form of a Tournament.
type State struct {
	Config  Config          `yaml:"config"`
	Players []player.Player `yaml:"players"`
	Rounds  []round.Round   `yaml:"rounds,omitempty"`
}

// Snapshot returns a copy of the tournament's state.
func (tour *Tournament) Snapshot() State {
	tour.mu.Lock()
	defer tour.mu.Unlock()

	return State{
		Config:  tour.config,
		Players: tour.players.Players(),
		Rounds:  cloneRounds(tour.rounds),
	}
}

// Restore recreates a tournament from its state, recomputing the standings
// from the round history.
func Restore(state State) (*Tournament, error) {
	tour, err := New(state.Config)
	if err != nil {
		return nil, err
	}

	for _, p := range state.Players {
		if p.ID == "" {
			return nil, fmt.Errorf("restore %s: player %q has no id", state.Config.Name, p.FullName())
		}
	}
	tour.register(state.Players)

	for i, r := range state.Rounds {
		if r.Index != i+1 {
			return nil, fmt.Errorf("restore %s: round %d has index %d", state.Config.Name, i+1, r.Index)
		}

		if i < len(state.Rounds)-1 && !r.Closed() {
			return nil, fmt.Errorf("restore %s: round %d: %w", state.Config.Name, r.Index, ErrRoundOpen)
		}

		for _, pairing := range r.Pairings {
			if pairing.Round != r.Index {
				return nil, fmt.Errorf("restore %s: pairing %s belongs to round %d", state.Config.Name, pairing, pairing.Round)
			}

			for _, id := range []string{pairing.PlayerA, pairing.PlayerB} {
				if _, found := tour.players.Get(id); id != "" && !found {
					return nil, fmt.Errorf("restore %s: %w: %s", state.Config.Name, ErrUnknownPlayer, id)
				}
			}

			if err := pairing.CheckResult(); err != nil {
				return nil, fmt.Errorf("restore %s: %w", state.Config.Name, err)
			}
		}
	}

	tour.rounds = cloneRounds(state.Rounds)
	tour.algorithm.RoundEnded(tour.rounds)

	return tour, nil
}
