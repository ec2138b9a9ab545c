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

package stats

import "laptudirm.com/x/pairings/pkg/round"

// faced is an opponent along with their average points per round as of the
// end of the round in which they were faced.
type faced struct {
	opponent string
	average  float64
}

// Recompute rebuilds every player's stats from the round history. Only
// closed rounds count towards scores; byes are noted from every round, so a
// bye handed out in the open round is already visible.
//
// Strength of schedule is the mean of the faced opponents' averages, and
// extended strength of schedule the mean of those opponents' strength of
// schedule. Byes contribute no opponent.
func (standings *Standings) Recompute(rounds []round.Round, points Points) {
	for _, id := range standings.order {
		*standings.players[id] = PlayerStats{}
	}

	history := make(map[string][]faced)
	for i := range rounds {
		r := &rounds[i]

		for _, pairing := range r.Pairings {
			standings.Track(pairing.PlayerA)
			if pairing.IsBye() {
				standings.MarkBye(pairing.PlayerA)
			} else {
				standings.Track(pairing.PlayerB)
			}
		}

		if !r.Closed() {
			continue
		}

		for _, pairing := range r.Pairings {
			standings.score(pairing, pairing.PlayerA, points)
			if !pairing.IsBye() {
				standings.score(pairing, pairing.PlayerB, points)
			}
		}

		for _, pairing := range r.Pairings {
			if pairing.IsBye() {
				continue
			}

			a, b := pairing.PlayerA, pairing.PlayerB
			history[a] = append(history[a], faced{b, standings.players[b].AveragePoints()})
			history[b] = append(history[b], faced{a, standings.players[a].AveragePoints()})
		}
	}

	for id, opponents := range history {
		total := 0.0
		for _, opponent := range opponents {
			total += opponent.average
		}

		standings.players[id].StrengthOfSchedule = total / float64(len(opponents))
	}

	for id, opponents := range history {
		total := 0.0
		for _, opponent := range opponents {
			total += standings.players[opponent.opponent].StrengthOfSchedule
		}

		standings.players[id].ExtendedStrengthOfSchedule = total / float64(len(opponents))
	}
}

// score adds the player's outcome of the reported pairing to their stats.
func (standings *Standings) score(pairing round.Pairing, id string, points Points) {
	outcome, ok := pairing.OutcomeOf(id)
	if !ok {
		return
	}

	stats := standings.players[id]
	stats.RoundsPlayed++
	stats.Score += points.Value(outcome)

	switch outcome {
	case round.Win:
		stats.Wins++
	case round.Draw:
		stats.Draws++
	case round.Loss:
		stats.Losses++
	case round.Bye:
		stats.Byes++
		stats.HadBye = true
	}
}
