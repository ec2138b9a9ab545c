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

package schedule

import (
	"sort"

	"laptudirm.com/x/pairings/pkg/round"
	"laptudirm.com/x/pairings/pkg/stats"
)

// Rank orders the given players best-first by score, strength of schedule,
// and extended strength of schedule. Players equal on all three are ordered
// randomly, and before any round has closed the whole order is random.
func (b *base) Rank(players []string, rounds []round.Round) []string {
	ranked := append([]string(nil), players...)
	for _, id := range ranked {
		b.standings.Track(id)
	}

	b.rng.Shuffle(len(ranked), func(i, j int) {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	})

	if !anyClosed(rounds) {
		return ranked
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return Better(b.standings.Get(ranked[i]), b.standings.Get(ranked[j]))
	})

	return ranked
}

// Better reports whether x ranks strictly above y.
func Better(x, y stats.PlayerStats) bool {
	switch {
	case x.Score != y.Score:
		return x.Score > y.Score
	case x.StrengthOfSchedule != y.StrengthOfSchedule:
		return x.StrengthOfSchedule > y.StrengthOfSchedule
	default:
		return x.ExtendedStrengthOfSchedule > y.ExtendedStrengthOfSchedule
	}
}

func anyClosed(rounds []round.Round) bool {
	for i := range rounds {
		if rounds[i].Closed() {
			return true
		}
	}

	return false
}
